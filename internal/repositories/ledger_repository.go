package repositories

import (
	"context"
	"errors"

	"zeaz/internal/models"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrJobNotFound         = errors.New("job not found")
)

// LedgerRepository defines the append-only ledger store.
//
// The ledger table is the single shared mutable resource in the system and
// Append/GuardedAppend are its only writer paths. Idempotency-key uniqueness
// is always enforced by the store itself; callers never pre-check the key.
type LedgerRepository interface {
	// Append persists the entry as a new row. It returns false without error
	// when the idempotency key already exists, making it safe to retry with
	// identical input. Any other failure is a store error.
	Append(ctx context.Context, entry *models.LedgerEntry) (inserted bool, err error)

	// GuardedAppend is Append with an overdraft guard: the balance read and
	// the insert run in one unit serialized per (user, currency), and the
	// write commits only if the post-append balance stays non-negative.
	// Returns ErrInsufficientBalance otherwise; the key is not consumed.
	GuardedAppend(ctx context.Context, entry *models.LedgerEntry) (inserted bool, err error)

	// Balance returns the sum of amounts for the pair over committed rows,
	// zero when no rows exist. Currency must already be normalized.
	Balance(ctx context.Context, userID, currency string) (int64, error)
}

// AuditRepository persists the best-effort audit trail.
type AuditRepository interface {
	Record(ctx context.Context, entry *models.AuditLog) error
}

// JobRepository stores content-generation jobs. Injected rather than global
// so the backing store can change without touching callers.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	Get(ctx context.Context, id string) (*models.Job, error)
	// List returns all jobs, newest first.
	List(ctx context.Context) ([]*models.Job, error)
}
