package handlers

import (
	"zeaz/internal/middleware"
	"zeaz/internal/services/job"
	"zeaz/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PanelHandler struct {
	jobService job.Service
}

func NewPanelHandler(jobService job.Service) *PanelHandler {
	return &PanelHandler{jobService: jobService}
}

// AdminPanel summarizes the managed features for admin users.
func (h *PanelHandler) AdminPanel(c *fiber.Ctx) error {
	claims, err := middleware.ClaimsFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	jobs, err := h.jobService.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to list jobs")
	}

	return utils.Success(c, fiber.Map{
		"id":     "admin",
		"role":   claims.Role,
		"status": "ok",
		"managed_features": []string{
			"wallet",
			"ledger",
			"tiktok_feed_form_generator",
			"tiktok_video_generator",
			"tiktok_shop_affiliate_upload",
		},
		"job_count": len(jobs),
	})
}

// UserPanel summarizes the actions available to the authenticated user.
func (h *PanelHandler) UserPanel(c *fiber.Ctx) error {
	claims, err := middleware.ClaimsFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	return utils.Success(c, fiber.Map{
		"id":                claims.UserID,
		"role":              claims.Role,
		"status":            "ok",
		"available_actions": []string{"view_balance", "view_jobs"},
	})
}
