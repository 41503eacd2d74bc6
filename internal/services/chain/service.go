// Package chain credits wallets for confirmed on-chain deposits.
package chain

import (
	"context"
	"log"
	"time"

	"zeaz/internal/models"
	"zeaz/internal/services/ledger"
)

// Config controls the confirmation poller.
type Config struct {
	ConfirmDepth int
	PollInterval time.Duration
}

// Service ingests confirmed on-chain transactions into the ledger.
type Service interface {
	// ProcessConfirmedTx appends a credit for a transaction that has reached
	// the configured confirmation depth. The tx hash is folded into the
	// idempotency key, so re-observing the same transaction is harmless.
	ProcessConfirmedTx(ctx context.Context, txHash, userID string, amount int64, currency string) (inserted bool, err error)

	// Run blocks, polling for newly confirmed transactions until the
	// context is cancelled.
	Run(ctx context.Context)
}

type service struct {
	ledger ledger.Service
	cfg    Config
}

func NewService(ledgerSvc ledger.Service, cfg Config) Service {
	if ledgerSvc == nil {
		panic("ledger service is required")
	}
	if cfg.ConfirmDepth <= 0 {
		cfg.ConfirmDepth = 12
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 10 * time.Second
	}
	return &service{ledger: ledgerSvc, cfg: cfg}
}

func (s *service) ProcessConfirmedTx(ctx context.Context, txHash, userID string, amount int64, currency string) (bool, error) {
	return s.ledger.AppendEntry(ctx, ledger.EntryInput{
		UserID:         userID,
		Amount:         amount,
		Currency:       currency,
		Reference:      txHash,
		IdempotencyKey: "chain:" + txHash,
		Type:           models.EntryTypeOnchain,
	})
}

func (s *service) Run(ctx context.Context) {
	log.Printf("chain worker started (confirm depth=%d, interval=%s)", s.cfg.ConfirmDepth, s.cfg.PollInterval)

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("chain worker stopped")
			return
		case <-ticker.C:
			// TODO: poll the node RPC for transactions at ConfirmDepth
			// and feed them through ProcessConfirmedTx.
		}
	}
}
