// Package middleware provides HTTP middleware for the application.
package middleware

import (
	"strings"

	"zeaz/internal/models"
	"zeaz/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles validates the bearer token and checks that its role is one of
// the allowed roles. Valid claims are stored on the request context under
// "claims" for handlers.
func RequireRoles(allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Unauthorized(c, "missing authorization header")
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Unauthorized(c, "invalid authorization format")
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return utils.Unauthorized(c, "invalid token")
		}

		if _, ok := allowedSet[claims.Role]; !ok {
			return utils.Forbidden(c, "forbidden")
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// ClaimsFromContext extracts the validated claims a RequireRoles middleware
// stored on the request.
func ClaimsFromContext(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}
