package models

import (
	"time"
)

// Audit actions
const (
	AuditActionLedgerAppend = "ledger.append"
)

// AuditLog is a best-effort trail of successful ledger writes. It is
// informational only: a missing audit row never proves the ledger write
// did not happen.
type AuditLog struct {
	ID        uint64 `gorm:"primarykey"`
	Actor     string `gorm:"size:128;not null"`
	Action    string `gorm:"size:128;not null"`
	Details   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (AuditLog) TableName() string {
	return "audit_log"
}
