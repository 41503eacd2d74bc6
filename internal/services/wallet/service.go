// Package wallet orchestrates credit and debit requests against the ledger.
package wallet

import (
	"context"
	"errors"

	"zeaz/internal/models"
	"zeaz/internal/repositories"
	"zeaz/internal/services/ledger"
)

// Service defines the wallet operations exposed to the HTTP layer.
type Service interface {
	Credit(ctx context.Context, req OperationRequest) (*OperationResult, error)
	Debit(ctx context.Context, req OperationRequest) (*OperationResult, error)
	Balance(ctx context.Context, userID, currency string) (int64, error)
}

type service struct {
	ledger ledger.Service
}

// NewService creates a wallet service on top of the ledger.
func NewService(ledgerSvc ledger.Service) Service {
	if ledgerSvc == nil {
		panic("ledger service is required")
	}
	return &service{ledger: ledgerSvc}
}

func (s *service) Credit(ctx context.Context, req OperationRequest) (*OperationResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	inserted, err := s.ledger.AppendEntry(ctx, ledger.EntryInput{
		UserID:         req.UserID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Reference:      req.Reference,
		IdempotencyKey: req.IdempotencyKey,
		Type:           models.EntryTypeCredit,
	})
	if err != nil {
		return nil, err
	}

	// Re-read even on inserted=false so repeated calls return the
	// current true balance.
	balance, err := s.ledger.UserBalance(ctx, req.UserID, req.Currency)
	if err != nil {
		return nil, err
	}
	return &OperationResult{Inserted: inserted, Balance: balance}, nil
}

func (s *service) Debit(ctx context.Context, req OperationRequest) (*OperationResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	inserted, err := s.ledger.GuardedAppend(ctx, ledger.EntryInput{
		UserID:         req.UserID,
		Amount:         -req.Amount,
		Currency:       req.Currency,
		Reference:      req.Reference,
		IdempotencyKey: req.IdempotencyKey,
		Type:           models.EntryTypeDebit,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientBalance) {
			// Overdraft rejection is an expected outcome. No row was
			// written and the idempotency key remains unconsumed.
			balance, balErr := s.ledger.UserBalance(ctx, req.UserID, req.Currency)
			if balErr != nil {
				return nil, balErr
			}
			return &OperationResult{
				Inserted: false,
				Balance:  balance,
				Error:    ReasonInsufficientFunds,
			}, nil
		}
		return nil, err
	}

	balance, err := s.ledger.UserBalance(ctx, req.UserID, req.Currency)
	if err != nil {
		return nil, err
	}
	return &OperationResult{Inserted: inserted, Balance: balance}, nil
}

func (s *service) Balance(ctx context.Context, userID, currency string) (int64, error) {
	return s.ledger.UserBalance(ctx, userID, currency)
}
