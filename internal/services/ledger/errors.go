package ledger

import "errors"

// Service errors
var (
	ErrZeroAmount        = errors.New("amount must not be zero")
	ErrMissingUserID     = errors.New("user id is required")
	ErrMissingIdempotKey = errors.New("idempotency key is required")
)
