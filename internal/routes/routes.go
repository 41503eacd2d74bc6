// Package routes defines the API routing configuration.
// It wires repositories, services and handlers, and applies the role
// middleware each route group requires.
package routes

import (
	"zeaz/internal/config"
	"zeaz/internal/handlers"
	"zeaz/internal/middleware"
	"zeaz/internal/models"
	"zeaz/internal/repositories"
	"zeaz/internal/services/audit"
	"zeaz/internal/services/job"
	"zeaz/internal/services/ledger"
	"zeaz/internal/services/stripewebhook"
	"zeaz/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, redisClient *redis.Client) {
	// Repositories
	ledgerRepo := repositories.NewLedgerRepository(db)
	auditRepo := repositories.NewAuditRepository(db)
	jobRepo := repositories.NewRedisJobRepository(redisClient)

	// Services
	auditService := audit.NewService(auditRepo)
	ledgerService := ledger.NewService(ledgerRepo, auditService)
	walletService := wallet.NewService(ledgerService)
	stripeService := stripewebhook.NewService(
		ledgerService,
		config.GetEnv("STRIPE_WEBHOOK_SECRET", "whsec-change-me"),
	)
	jobService := job.NewService(jobRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler()
	walletHandler := handlers.NewWalletHandler(walletService)
	webhookHandler := handlers.NewWebhookHandler(stripeService)
	jobHandler := handlers.NewJobHandler(jobService)
	panelHandler := handlers.NewPanelHandler(jobService)

	// Public routes
	app.Get("/healthz", handlers.HealthCheck)
	app.Post("/auth/token", authHandler.CreateToken)
	app.Post("/webhooks/stripe", webhookHandler.Stripe)

	api := app.Group("/api")

	anyRole := middleware.RequireRoles(models.RoleUser, models.RoleFinance, models.RoleAdmin)
	financeOnly := middleware.RequireRoles(models.RoleFinance, models.RoleAdmin)

	// Wallet
	walletGroup := api.Group("/wallet")
	walletGroup.Get("/balance/:user_id/:currency", anyRole, walletHandler.GetBalance)
	walletGroup.Post("/credit", financeOnly, walletHandler.Credit)
	walletGroup.Post("/debit", financeOnly, walletHandler.Debit)

	// Content jobs
	tiktok := api.Group("/tiktok", financeOnly)
	tiktok.Post("/feed-product-form/generate", jobHandler.GenerateFeedForm)
	tiktok.Post("/video/generate", jobHandler.GenerateVideo)
	tiktok.Post("/shop-affiliate/upload", jobHandler.Upload)
	tiktok.Get("/jobs", jobHandler.ListJobs)
	tiktok.Get("/jobs/:id", jobHandler.GetJob)

	// Control panels
	api.Get("/admin/control-panel", middleware.RequireRoles(models.RoleAdmin), panelHandler.AdminPanel)
	api.Get("/user/control-panel", anyRole, panelHandler.UserPanel)
}
