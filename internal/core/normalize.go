package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize converts a loosely shaped indexer envelope into the strict
// triple the ledgers persist. Only transaction_hash, user and amount are
// consumed; no other envelope field is trusted.
func Normalize(msg WebhookMessage) (NormalizedEvent, error) {
	if msg.New == nil {
		return NormalizedEvent{}, ErrMissingPayload
	}

	amount := strings.TrimSpace(msg.New.Amount)
	if msg.New.TransactionHash == "" || msg.New.User == "" ||
		amount == "" || amount == "null" || amount == `""` {
		return NormalizedEvent{}, ErrMissingFields
	}

	normAmount, err := normalizeAmount(amount)
	if err != nil {
		return NormalizedEvent{}, err
	}

	return NormalizedEvent{
		TxHash: NormalizeHex(msg.New.TransactionHash),
		User:   NormalizeHex(msg.New.User),
		Amount: normAmount,
	}, nil
}

// NormalizeHex canonicalizes hash-like strings to a 0x prefix. The indexer
// delivers Postgres bytea escapes (\x...), already prefixed values and bare
// hex interchangeably.
func NormalizeHex(value string) string {
	switch {
	case strings.HasPrefix(value, `\x`):
		return "0x" + value[2:]
	case strings.HasPrefix(value, "0x"):
		return value
	default:
		return "0x" + value
	}
}

// normalizeAmount receives the raw JSON token for amount. Quoted tokens
// must be plain base-10 digits. Number tokens go through decimal so values
// beyond float64 precision survive intact; fractional and negative values
// are rejected.
func normalizeAmount(raw string) (string, error) {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		digits := raw[1 : len(raw)-1]
		if !isDecimalDigits(digits) {
			return "", fmt.Errorf("%w: %q", ErrInvalidAmount, digits)
		}
		return digits, nil
	}

	dec, err := decimal.NewFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if dec.IsNegative() || !dec.IsInteger() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	return dec.String(), nil
}

func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
