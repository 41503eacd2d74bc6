package wallet

import "errors"

// Service errors
var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

// ReasonInsufficientFunds is the structured rejection reason returned when a
// debit would overdraw the account. It is a business outcome, not an error:
// the idempotency key is not consumed and the same debit may succeed later.
const ReasonInsufficientFunds = "insufficient_funds"
