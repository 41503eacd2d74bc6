// Package stripewebhook turns verified Stripe events into ledger credits.
package stripewebhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"zeaz/internal/models"
	"zeaz/internal/services/ledger"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"
)

// Service errors
var (
	ErrInvalidSignature = errors.New("invalid stripe signature")
	ErrInvalidPayload   = errors.New("invalid payment_intent payload")
)

// EventPaymentIntentSucceeded is the only event type that moves money.
const EventPaymentIntentSucceeded = "payment_intent.succeeded"

// Service processes Stripe webhook deliveries. The event id is folded into
// the idempotency key, so Stripe's at-least-once delivery cannot double-credit
// a wallet.
type Service interface {
	// HandleEvent verifies the payload signature and, for
	// payment_intent.succeeded events, appends a ledger credit. It returns
	// whether a new ledger row was written; unrecognized event types are
	// acknowledged with inserted=false.
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) (inserted bool, err error)
}

type service struct {
	ledger ledger.Service
	secret string
}

func NewService(ledgerSvc ledger.Service, webhookSecret string) Service {
	if ledgerSvc == nil {
		panic("ledger service is required")
	}
	return &service{ledger: ledgerSvc, secret: webhookSecret}
}

func (s *service) HandleEvent(ctx context.Context, payload []byte, sigHeader string) (bool, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.secret)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if event.Type != EventPaymentIntentSucceeded {
		return false, nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return s.processPaymentIntent(ctx, &intent)
}

// processPaymentIntent credits the wallet named in the intent metadata.
func (s *service) processPaymentIntent(ctx context.Context, intent *stripe.PaymentIntent) (bool, error) {
	stripeID := strings.TrimSpace(intent.ID)
	currency := strings.ToUpper(strings.TrimSpace(string(intent.Currency)))
	amount := intent.AmountReceived

	userID := "unknown"
	if v := strings.TrimSpace(intent.Metadata["user_id"]); v != "" {
		userID = v
	}

	if stripeID == "" || currency == "" || amount <= 0 {
		return false, ErrInvalidPayload
	}

	return s.ledger.AppendEntry(ctx, ledger.EntryInput{
		UserID:         userID,
		Amount:         amount,
		Currency:       currency,
		Reference:      stripeID,
		IdempotencyKey: "stripe:" + stripeID,
		Type:           models.EntryTypeStripe,
	})
}
