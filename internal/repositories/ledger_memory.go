package repositories

import (
	"context"
	"sync"
	"time"

	"zeaz/internal/models"
)

// MemoryLedgerRepository is an in-memory LedgerRepository used by tests and
// local development. It mirrors the Postgres semantics: inserts are atomic
// under a store-wide lock, and GuardedAppend serializes per account.
type MemoryLedgerRepository struct {
	mu      sync.Mutex
	nextID  uint64
	entries []models.LedgerEntry
	byKey   map[string]struct{}

	accountMu map[string]*sync.Mutex
}

func NewMemoryLedgerRepository() *MemoryLedgerRepository {
	return &MemoryLedgerRepository{
		nextID:    1,
		byKey:     make(map[string]struct{}),
		accountMu: make(map[string]*sync.Mutex),
	}
}

func (r *MemoryLedgerRepository) Append(ctx context.Context, entry *models.LedgerEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(entry), nil
}

func (r *MemoryLedgerRepository) GuardedAppend(ctx context.Context, entry *models.LedgerEntry) (bool, error) {
	lock := r.lockFor(entry.UserID + ":" + entry.Currency)
	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	balance := r.sumLocked(entry.UserID, entry.Currency)
	r.mu.Unlock()

	if balance+entry.Amount < 0 {
		return false, ErrInsufficientBalance
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(entry), nil
}

func (r *MemoryLedgerRepository) Balance(ctx context.Context, userID, currency string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sumLocked(userID, currency), nil
}

// Entries returns a copy of all stored rows, for test assertions.
func (r *MemoryLedgerRepository) Entries() []models.LedgerEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.LedgerEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *MemoryLedgerRepository) insertLocked(entry *models.LedgerEntry) bool {
	if _, exists := r.byKey[entry.IdempotencyKey]; exists {
		return false
	}
	entry.ID = r.nextID
	entry.CreatedAt = time.Now().UTC()
	r.nextID++
	r.byKey[entry.IdempotencyKey] = struct{}{}
	r.entries = append(r.entries, *entry)
	return true
}

func (r *MemoryLedgerRepository) sumLocked(userID, currency string) int64 {
	var total int64
	for _, e := range r.entries {
		if e.UserID == userID && e.Currency == currency {
			total += e.Amount
		}
	}
	return total
}

func (r *MemoryLedgerRepository) lockFor(account string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.accountMu[account]
	if !ok {
		lock = &sync.Mutex{}
		r.accountMu[account] = lock
	}
	return lock
}
