package repositories

import (
	"context"
	"errors"
	"fmt"

	"zeaz/internal/models"

	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a Postgres-backed ledger repository.
// The gorm instance must be opened with TranslateError enabled so that
// unique-constraint violations surface as gorm.ErrDuplicatedKey.
func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Append(ctx context.Context, entry *models.LedgerEntry) (bool, error) {
	err := r.db.WithContext(ctx).Create(entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Already recorded; the insert itself is the atomicity boundary.
			return false, nil
		}
		return false, fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return true, nil
}

func (r *ledgerRepository) GuardedAppend(ctx context.Context, entry *models.LedgerEntry) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent writers for this account within the
		// transaction. The lock is released on commit or rollback.
		lockKey := entry.UserID + ":" + entry.Currency
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", lockKey).Error; err != nil {
			return err
		}

		var balance int64
		err := tx.Model(&models.LedgerEntry{}).
			Where("user_id = ? AND currency = ?", entry.UserID, entry.Currency).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&balance).Error
		if err != nil {
			return err
		}

		if balance+entry.Amount < 0 {
			return ErrInsufficientBalance
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		if errors.Is(err, ErrInsufficientBalance) {
			return false, ErrInsufficientBalance
		}
		return false, fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return true, nil
}

func (r *ledgerRepository) Balance(ctx context.Context, userID, currency string) (int64, error) {
	var balance int64
	err := r.db.WithContext(ctx).
		Model(&models.LedgerEntry{}).
		Where("user_id = ? AND currency = ?", userID, currency).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute balance: %w", err)
	}
	return balance, nil
}
