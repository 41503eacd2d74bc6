package ledger

// EntryInput carries the caller-supplied fields of a prospective ledger row.
// The store assigns identity and timestamp; everything else is validated and
// normalized by the service before persistence.
type EntryInput struct {
	UserID         string
	Amount         int64
	Currency       string
	Reference      string
	IdempotencyKey string
	Type           string
}
