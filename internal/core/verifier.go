package core

import "crypto/subtle"

// SecretVerifier compares the caller supplied webhook secret against the
// configured value. The configured secret is injected once at construction
// and read-only afterwards, so concurrent checks need no locking.
type SecretVerifier struct {
	secret []byte
}

func NewSecretVerifier(secret string) *SecretVerifier {
	return &SecretVerifier{
		secret: []byte(secret),
	}
}

// Check authorizes a single delivery. An unconfigured secret rejects every
// request rather than silently allowing any.
func (v *SecretVerifier) Check(provided string) error {
	if len(v.secret) == 0 {
		return ErrSecretNotConfigured
	}

	if subtle.ConstantTimeCompare(v.secret, []byte(provided)) != 1 {
		return ErrInvalidSecret
	}

	return nil
}
