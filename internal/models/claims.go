package models

import "github.com/golang-jwt/jwt/v5"

// Application roles
const (
	RoleAdmin   = "admin"
	RoleFinance = "finance"
	RoleUser    = "user"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// ValidRole reports whether role is one of the roles a token may carry.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleFinance, RoleUser:
		return true
	}
	return false
}
