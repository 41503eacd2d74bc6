package stripewebhook

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"zeaz/internal/models"
	"zeaz/internal/repositories"
	"zeaz/internal/services/audit"
	"zeaz/internal/services/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72/webhook"
)

const testSecret = "whsec_test_secret"

func newTestService(t *testing.T) (Service, *repositories.MemoryLedgerRepository) {
	t.Helper()
	repo := repositories.NewMemoryLedgerRepository()
	ledgerService := ledger.NewService(repo, audit.NewService(repositories.NewMemoryAuditRepository()))
	return NewService(ledgerService, testSecret), repo
}

func signedHeader(t *testing.T, payload []byte) string {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, testSecret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func paymentIntentEvent(intentJSON string) []byte {
	return []byte(fmt.Sprintf(`{"type":"payment_intent.succeeded","data":{"object":%s}}`, intentJSON))
}

func TestHandleEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeded intent credits the ledger once", func(t *testing.T) {
		s, repo := newTestService(t)
		payload := paymentIntentEvent(`{
			"id": "pi_123",
			"amount_received": 2500,
			"currency": "usd",
			"metadata": {"user_id": "u1"}
		}`)

		inserted, err := s.HandleEvent(ctx, payload, signedHeader(t, payload))
		require.NoError(t, err)
		assert.True(t, inserted)

		entries := repo.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "u1", entries[0].UserID)
		assert.Equal(t, int64(2500), entries[0].Amount)
		assert.Equal(t, "USD", entries[0].Currency)
		assert.Equal(t, "pi_123", entries[0].Reference)
		assert.Equal(t, "stripe:pi_123", entries[0].IdempotencyKey)
		assert.Equal(t, models.EntryTypeStripe, entries[0].Type)

		// Stripe redelivers; the ledger does not double-credit.
		inserted, err = s.HandleEvent(ctx, payload, signedHeader(t, payload))
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Len(t, repo.Entries(), 1)
	})

	t.Run("missing user metadata falls back to unknown", func(t *testing.T) {
		s, repo := newTestService(t)
		payload := paymentIntentEvent(`{"id": "pi_9", "amount_received": 100, "currency": "eur"}`)

		inserted, err := s.HandleEvent(ctx, payload, signedHeader(t, payload))
		require.NoError(t, err)
		assert.True(t, inserted)

		entries := repo.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "unknown", entries[0].UserID)
	})

	t.Run("invalid signature rejected", func(t *testing.T) {
		s, repo := newTestService(t)
		payload := paymentIntentEvent(`{"id": "pi_123", "amount_received": 2500, "currency": "usd"}`)

		_, err := s.HandleEvent(ctx, payload, "t=123,v1=deadbeef")
		assert.ErrorIs(t, err, ErrInvalidSignature)
		assert.Empty(t, repo.Entries())
	})

	t.Run("other event types acknowledged without effect", func(t *testing.T) {
		s, repo := newTestService(t)
		payload := []byte(`{"type":"charge.refunded","data":{"object":{"id":"ch_1"}}}`)

		inserted, err := s.HandleEvent(ctx, payload, signedHeader(t, payload))
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Empty(t, repo.Entries())
	})

	t.Run("invalid intent payloads rejected", func(t *testing.T) {
		s, repo := newTestService(t)

		bad := []string{
			`{"id": "", "amount_received": 100, "currency": "usd"}`,
			`{"id": "pi_1", "amount_received": 100, "currency": ""}`,
			`{"id": "pi_1", "amount_received": 0, "currency": "usd"}`,
			`{"id": "pi_1", "amount_received": -5, "currency": "usd"}`,
		}
		for _, intentJSON := range bad {
			payload := paymentIntentEvent(intentJSON)
			_, err := s.HandleEvent(ctx, payload, signedHeader(t, payload))
			assert.ErrorIs(t, err, ErrInvalidPayload)
		}
		assert.Empty(t, repo.Entries())
	})
}
