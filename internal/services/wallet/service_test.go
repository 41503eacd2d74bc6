package wallet

import (
	"context"
	"sync"
	"testing"

	"zeaz/internal/repositories"
	"zeaz/internal/services/audit"
	"zeaz/internal/services/ledger"
	"zeaz/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) AppendEntry(ctx context.Context, in ledger.EntryInput) (bool, error) {
	args := m.Called(ctx, in)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedger) GuardedAppend(ctx context.Context, in ledger.EntryInput) (bool, error) {
	args := m.Called(ctx, in)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedger) UserBalance(ctx context.Context, userID, currency string) (int64, error) {
	args := m.Called(ctx, userID, currency)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(t *testing.T) (Service, *repositories.MemoryLedgerRepository) {
	t.Helper()
	repo := repositories.NewMemoryLedgerRepository()
	ledgerService := ledger.NewService(repo, audit.NewService(repositories.NewMemoryAuditRepository()))
	return NewService(ledgerService), repo
}

func TestCredit(t *testing.T) {
	ctx := context.Background()

	t.Run("successful credit returns new balance", func(t *testing.T) {
		s, _ := newTestService(t)

		result, err := s.Credit(ctx, OperationRequest{
			UserID: "u1", Amount: 100, Currency: "usd", Reference: "r1", IdempotencyKey: "k1",
		})
		require.NoError(t, err)
		assert.True(t, result.Inserted)
		assert.Equal(t, int64(100), result.Balance)
		assert.Empty(t, result.Error)
	})

	t.Run("repeated credit is idempotent", func(t *testing.T) {
		s, repo := newTestService(t)
		req := OperationRequest{
			UserID: "u1", Amount: 100, Currency: "usd", Reference: "r1", IdempotencyKey: "k1",
		}

		first, err := s.Credit(ctx, req)
		require.NoError(t, err)
		assert.True(t, first.Inserted)
		assert.Equal(t, int64(100), first.Balance)

		second, err := s.Credit(ctx, req)
		require.NoError(t, err)
		assert.False(t, second.Inserted)
		assert.Equal(t, int64(100), second.Balance)

		assert.Len(t, repo.Entries(), 1)
	})

	t.Run("invalid amount rejected before any store call", func(t *testing.T) {
		s, repo := newTestService(t)

		for _, amount := range []int64{0, -50} {
			_, err := s.Credit(ctx, OperationRequest{
				UserID: "u1", Amount: amount, Currency: "USD", Reference: "r", IdempotencyKey: "k",
			})
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
		assert.Empty(t, repo.Entries())
	})

	t.Run("invalid currency rejected", func(t *testing.T) {
		s, _ := newTestService(t)

		_, err := s.Credit(ctx, OperationRequest{
			UserID: "u1", Amount: 100, Currency: "us", Reference: "r", IdempotencyKey: "k",
		})
		assert.ErrorIs(t, err, validation.ErrInvalidCurrency)
	})

	t.Run("currency normalized before persistence", func(t *testing.T) {
		s, repo := newTestService(t)

		result, err := s.Credit(ctx, OperationRequest{
			UserID: "u1", Amount: 100, Currency: " usd ", Reference: "r1", IdempotencyKey: "k1",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100), result.Balance)

		entries := repo.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "USD", entries[0].Currency)
	})
}

func TestDebit(t *testing.T) {
	ctx := context.Background()

	t.Run("debit within balance succeeds", func(t *testing.T) {
		s, _ := newTestService(t)
		mustCredit(t, s, "u1", 100, "k1")

		result, err := s.Debit(ctx, OperationRequest{
			UserID: "u1", Amount: 50, Currency: "USD", Reference: "r2", IdempotencyKey: "k2",
		})
		require.NoError(t, err)
		assert.True(t, result.Inserted)
		assert.Equal(t, int64(50), result.Balance)
		assert.Empty(t, result.Error)
	})

	t.Run("overdraft rejected without writing a row", func(t *testing.T) {
		s, repo := newTestService(t)
		mustCredit(t, s, "u1", 100, "k1")

		result, err := s.Debit(ctx, OperationRequest{
			UserID: "u1", Amount: 150, Currency: "USD", Reference: "r2", IdempotencyKey: "k2",
		})
		require.NoError(t, err)
		assert.False(t, result.Inserted)
		assert.Equal(t, int64(100), result.Balance)
		assert.Equal(t, ReasonInsufficientFunds, result.Error)

		assert.Len(t, repo.Entries(), 1)
	})

	t.Run("rejected debit does not consume the idempotency key", func(t *testing.T) {
		s, _ := newTestService(t)
		mustCredit(t, s, "u1", 100, "k1")

		req := OperationRequest{
			UserID: "u1", Amount: 150, Currency: "USD", Reference: "r2", IdempotencyKey: "k2",
		}
		rejected, err := s.Debit(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, ReasonInsufficientFunds, rejected.Error)

		// Funds arrive, then the same debit is retried with the same key.
		mustCredit(t, s, "u1", 100, "k3")

		retried, err := s.Debit(ctx, req)
		require.NoError(t, err)
		assert.True(t, retried.Inserted)
		assert.Equal(t, int64(50), retried.Balance)
	})

	t.Run("repeated debit is idempotent", func(t *testing.T) {
		s, _ := newTestService(t)
		mustCredit(t, s, "u1", 100, "k1")

		req := OperationRequest{
			UserID: "u1", Amount: 40, Currency: "USD", Reference: "r2", IdempotencyKey: "k2",
		}
		first, err := s.Debit(ctx, req)
		require.NoError(t, err)
		assert.True(t, first.Inserted)

		second, err := s.Debit(ctx, req)
		require.NoError(t, err)
		assert.False(t, second.Inserted)
		assert.Equal(t, int64(60), second.Balance)
	})

	t.Run("concurrent debits overdraw at most once", func(t *testing.T) {
		s, repo := newTestService(t)
		mustCredit(t, s, "u1", 100, "k1")

		var wg sync.WaitGroup
		results := make([]*OperationResult, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				result, err := s.Debit(ctx, OperationRequest{
					UserID: "u1", Amount: 60, Currency: "USD",
					Reference: "r", IdempotencyKey: "debit-" + string(rune('a'+i)),
				})
				assert.NoError(t, err)
				results[i] = result
			}(i)
		}
		wg.Wait()

		inserted := 0
		for _, r := range results {
			if r.Inserted {
				inserted++
			}
		}
		assert.LessOrEqual(t, inserted, 1)

		balance, err := repo.Balance(ctx, "u1", "USD")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, balance, int64(0))
	})
}

func TestDebit_StoreFailurePropagates(t *testing.T) {
	mockLedger := new(MockLedger)
	s := NewService(mockLedger)

	mockLedger.On("GuardedAppend", mock.Anything, mock.Anything).
		Return(false, assert.AnError)

	_, err := s.Debit(context.Background(), OperationRequest{
		UserID: "u1", Amount: 10, Currency: "USD", Reference: "r", IdempotencyKey: "k",
	})
	assert.ErrorIs(t, err, assert.AnError)
	mockLedger.AssertExpectations(t)
}

func TestBalance(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	balance, err := s.Balance(ctx, "ghost", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	mustCredit(t, s, "u1", 100, "k1")
	mustCredit(t, s, "u1", 35, "k2")

	balance, err = s.Balance(ctx, "u1", "usd")
	require.NoError(t, err)
	assert.Equal(t, int64(135), balance)

	// Other currencies and users are unaffected.
	balance, err = s.Balance(ctx, "u1", "EUR")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func mustCredit(t *testing.T, s Service, userID string, amount int64, key string) {
	t.Helper()
	result, err := s.Credit(context.Background(), OperationRequest{
		UserID: userID, Amount: amount, Currency: "USD", Reference: "seed", IdempotencyKey: key,
	})
	require.NoError(t, err)
	require.True(t, result.Inserted)
}
