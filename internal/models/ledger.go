package models

import (
	"time"
)

// Ledger entry types
const (
	EntryTypeCredit  = "credit"
	EntryTypeDebit   = "debit"
	EntryTypeStripe  = "stripe"
	EntryTypeOnchain = "onchain"
)

// LedgerEntry is one immutable signed monetary movement. Amounts are integers
// in minor currency units (cents); positive is a credit, negative a debit.
// The idempotency key is globally unique, enforced by the database, and is
// what makes retried requests safe to replay.
type LedgerEntry struct {
	ID             uint64 `gorm:"primarykey"`
	UserID         string `gorm:"size:128;index;not null"`
	Amount         int64  `gorm:"not null"`
	Currency       string `gorm:"size:16;not null"`
	Reference      string `gorm:"size:256;not null"`
	IdempotencyKey string `gorm:"size:256;uniqueIndex;not null"`
	Type           string `gorm:"size:32;not null"`
	CreatedAt      time.Time
}

// TableName keeps the table name aligned with the deployed schema.
func (LedgerEntry) TableName() string {
	return "ledger"
}
