package handlers

import (
	"time"

	"zeaz/internal/models"
	"zeaz/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const tokenTTL = 60 * time.Minute

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// CreateToken mints a bearer token for the given user and role.
func (h *AuthHandler) CreateToken(c *fiber.Ctx) error {
	var input struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	if input.UserID == "" {
		return utils.BadRequest(c, "user_id is required")
	}
	if !models.ValidRole(input.Role) {
		return utils.BadRequest(c, "role must be admin, finance or user")
	}

	token, err := utils.MintToken(input.UserID, input.Role, tokenTTL)
	if err != nil {
		return utils.InternalError(c, "Failed to mint token")
	}

	return utils.Success(c, fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
