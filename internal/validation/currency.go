// Package validation holds input validation shared across services.
package validation

import (
	"errors"
	"strings"
)

const (
	currencyMinLen = 3
	currencyMaxLen = 16
)

var ErrInvalidCurrency = errors.New("invalid currency")

// NormalizeCurrency trims and uppercases a currency code. Codes are not
// checked against an ISO list: any 3-16 character token is accepted so that
// custom and non-fiat currency tags can flow through the ledger.
func NormalizeCurrency(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) < currencyMinLen || len(normalized) > currencyMaxLen {
		return "", ErrInvalidCurrency
	}
	return normalized, nil
}
