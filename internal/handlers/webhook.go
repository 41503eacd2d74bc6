package handlers

import (
	"errors"

	"zeaz/internal/services/stripewebhook"
	"zeaz/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WebhookHandler struct {
	stripeService stripewebhook.Service
}

func NewWebhookHandler(stripeService stripewebhook.Service) *WebhookHandler {
	return &WebhookHandler{stripeService: stripeService}
}

// Stripe ingests a Stripe webhook delivery. Signature failures are rejected;
// recognized events are appended to the ledger idempotently.
func (h *WebhookHandler) Stripe(c *fiber.Ctx) error {
	payload := c.Body()
	sig := c.Get("Stripe-Signature")

	inserted, err := h.stripeService.HandleEvent(c.Context(), payload, sig)
	if err != nil {
		if errors.Is(err, stripewebhook.ErrInvalidSignature) {
			return utils.BadRequest(c, "Invalid Stripe signature")
		}
		if errors.Is(err, stripewebhook.ErrInvalidPayload) {
			return utils.BadRequest(c, "Invalid payment_intent payload")
		}
		return utils.InternalError(c, "Failed to process event")
	}

	return utils.Success(c, fiber.Map{
		"received": true,
		"inserted": inserted,
	})
}
