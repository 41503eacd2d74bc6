package wallet

// OperationRequest carries a credit or debit request into the wallet service.
// Amount is a positive integer in minor currency units for both operations;
// debits are negated internally before they reach the ledger.
type OperationRequest struct {
	UserID         string `json:"user_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Reference      string `json:"reference"`
	IdempotencyKey string `json:"idempotency_key"`
}

// OperationResult is the outcome of a wallet operation. Balance is always the
// freshly recomputed post-operation balance, including when Inserted is false,
// so retried calls report the current true state.
type OperationResult struct {
	Inserted bool   `json:"inserted"`
	Balance  int64  `json:"balance"`
	Error    string `json:"error,omitempty"`
}
