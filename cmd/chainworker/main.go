// Package main runs the blockchain confirmation poller. It shares the ledger
// with the API server, so deposits it records are idempotent with respect to
// any other writer.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"zeaz/internal/config"
	"zeaz/internal/repositories"
	"zeaz/internal/services/audit"
	"zeaz/internal/services/chain"
	"zeaz/internal/services/ledger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	ledgerRepo := repositories.NewLedgerRepository(repositories.DB)
	auditRepo := repositories.NewAuditRepository(repositories.DB)
	ledgerService := ledger.NewService(ledgerRepo, audit.NewService(auditRepo))

	worker := chain.NewService(ledgerService, chain.Config{
		ConfirmDepth: config.GetIntEnv("CHAIN_CONFIRM_DEPTH", 12),
		PollInterval: time.Duration(config.GetIntEnv("CHAIN_POLL_SECONDS", 10)) * time.Second,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker.Run(ctx)
}
