package handlers

import (
	"context"
	"errors"

	"zeaz/internal/services/ledger"
	"zeaz/internal/services/wallet"
	"zeaz/internal/utils"
	"zeaz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// GetBalance returns the current balance for a user/currency pair.
func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	currency, err := validation.NormalizeCurrency(c.Params("currency"))
	if err != nil {
		return utils.BadRequest(c, "Invalid currency")
	}

	balance, err := h.walletService.Balance(c.Context(), userID, currency)
	if err != nil {
		return utils.InternalError(c, "Failed to get balance")
	}

	return utils.Success(c, fiber.Map{
		"user_id":  userID,
		"currency": currency,
		"balance":  balance,
	})
}

// Credit applies a wallet credit.
func (h *WalletHandler) Credit(c *fiber.Ctx) error {
	return h.operate(c, h.walletService.Credit)
}

// Debit applies a wallet debit with the overdraft guard.
func (h *WalletHandler) Debit(c *fiber.Ctx) error {
	return h.operate(c, h.walletService.Debit)
}

type walletOperation func(ctx context.Context, req wallet.OperationRequest) (*wallet.OperationResult, error)

func (h *WalletHandler) operate(c *fiber.Ctx, op walletOperation) error {
	var req wallet.OperationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if req.UserID == "" || req.IdempotencyKey == "" {
		return utils.BadRequest(c, "user_id and idempotency_key are required")
	}

	result, err := op(c.Context(), req)
	if err != nil {
		if isValidationError(err) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Operation failed")
	}

	return utils.Success(c, result)
}

func isValidationError(err error) bool {
	return errors.Is(err, wallet.ErrInvalidAmount) ||
		errors.Is(err, validation.ErrInvalidCurrency) ||
		errors.Is(err, ledger.ErrZeroAmount) ||
		errors.Is(err, ledger.ErrMissingUserID) ||
		errors.Is(err, ledger.ErrMissingIdempotKey)
}
