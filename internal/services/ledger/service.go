// Package ledger exposes the append-only ledger: validated appends with
// exactly-once semantics under retries, and derived balances.
package ledger

import (
	"context"
	"fmt"

	"zeaz/internal/models"
	"zeaz/internal/repositories"
	"zeaz/internal/services/audit"
	"zeaz/internal/validation"
)

// Service is the ledger entry point used by wallet operations, the Stripe
// webhook and the chain worker.
type Service interface {
	// AppendEntry validates and persists one entry. Returns false when the
	// idempotency key was already recorded; safe to call repeatedly with
	// identical input.
	AppendEntry(ctx context.Context, in EntryInput) (inserted bool, err error)

	// GuardedAppend is AppendEntry with an overdraft guard: the write only
	// commits if the account balance stays non-negative. Returns
	// repositories.ErrInsufficientBalance otherwise, without consuming the
	// idempotency key.
	GuardedAppend(ctx context.Context, in EntryInput) (inserted bool, err error)

	// UserBalance returns the current balance for the pair. The currency is
	// normalized internally; a snapshot only, concurrent appends may commit
	// between the read and whatever the caller does with it.
	UserBalance(ctx context.Context, userID, currency string) (int64, error)
}

type service struct {
	repo  repositories.LedgerRepository
	audit audit.Service
}

func NewService(repo repositories.LedgerRepository, auditor audit.Service) Service {
	if repo == nil {
		panic("ledger repo is required")
	}
	if auditor == nil {
		panic("audit service is required")
	}
	return &service{repo: repo, audit: auditor}
}

func (s *service) AppendEntry(ctx context.Context, in EntryInput) (bool, error) {
	entry, err := s.buildEntry(in)
	if err != nil {
		return false, err
	}

	inserted, err := s.repo.Append(ctx, entry)
	if err != nil {
		return false, err
	}
	if inserted {
		s.recordAudit(ctx, entry)
	}
	return inserted, nil
}

func (s *service) GuardedAppend(ctx context.Context, in EntryInput) (bool, error) {
	entry, err := s.buildEntry(in)
	if err != nil {
		return false, err
	}

	inserted, err := s.repo.GuardedAppend(ctx, entry)
	if err != nil {
		return false, err
	}
	if inserted {
		s.recordAudit(ctx, entry)
	}
	return inserted, nil
}

func (s *service) UserBalance(ctx context.Context, userID, currency string) (int64, error) {
	normalized, err := validation.NormalizeCurrency(currency)
	if err != nil {
		return 0, err
	}
	return s.repo.Balance(ctx, userID, normalized)
}

func (s *service) buildEntry(in EntryInput) (*models.LedgerEntry, error) {
	if in.UserID == "" {
		return nil, ErrMissingUserID
	}
	if in.Amount == 0 {
		return nil, ErrZeroAmount
	}
	if in.IdempotencyKey == "" {
		return nil, ErrMissingIdempotKey
	}
	currency, err := validation.NormalizeCurrency(in.Currency)
	if err != nil {
		return nil, err
	}

	return &models.LedgerEntry{
		UserID:         in.UserID,
		Amount:         in.Amount,
		Currency:       currency,
		Reference:      in.Reference,
		IdempotencyKey: in.IdempotencyKey,
		Type:           in.Type,
	}, nil
}

func (s *service) recordAudit(ctx context.Context, entry *models.LedgerEntry) {
	details := fmt.Sprintf("%s %d %s ref=%s key=%s",
		entry.Type, entry.Amount, entry.Currency, entry.Reference, entry.IdempotencyKey)
	s.audit.Record(ctx, entry.UserID, models.AuditActionLedgerAppend, details)
}
