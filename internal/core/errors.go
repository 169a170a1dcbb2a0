package core

import "errors"

// ErrSecretNotConfigured is a deployment fault: no webhook secret is set,
// so every delivery is rejected until the operator fixes it.
var ErrSecretNotConfigured error = errors.New("webhook secret not configured")

// ErrInvalidSecret rejects a single delivery whose secret header is absent
// or does not match the configured value.
var ErrInvalidSecret error = errors.New("invalid webhook secret")

// ErrMissingPayload means the envelope carried no new-entity object.
var ErrMissingPayload error = errors.New("missing webhook payload data")

// ErrMissingFields keeps the exact wording upstream consumers match on.
var ErrMissingFields error = errors.New("Missing required fields: transaction_hash, user, or amount")

var ErrInvalidAmount error = errors.New("amount must be a non-negative integer")

var ErrEntryNotFound error = errors.New("ledger entry not found")
