// Package passkey gates the administrative view behind a shared secret.
//
// The gate is advisory, not a security boundary: the expected secret lives in
// client-visible configuration and the stored token is only obfuscated, not
// encrypted. It protects against casual navigation, nothing more. There is
// also no lockout or backoff on repeated rejections; that is a known
// hardening gap kept to match the product's observed behavior.
package passkey

import (
	"encoding/base64"
	"errors"
)

// StorageKey is the fixed name the obfuscated token is stored under.
const StorageKey = "access_key"

var (
	// ErrPasskeyRejected is returned when a candidate does not match the
	// expected secret. Callers surface a generic message and must never
	// reveal the expected value.
	ErrPasskeyRejected = errors.New("invalid passkey")

	// ErrMalformedToken is returned when a stored token cannot be decoded.
	ErrMalformedToken = errors.New("malformed access token")

	// ErrNotAdmitted is returned by Authorize when no valid token is stored.
	// An absent token, a malformed token, and a token for a stale secret are
	// all treated identically.
	ErrNotAdmitted = errors.New("admin access not admitted")
)

// Store is the client-storage capability the gate persists its token into.
// Implementations may be backed by cookies, an in-memory map, or any other
// key-value surface.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Encode obfuscates a secret for client storage. The transform is reversible
// and deterministic; it only keeps the raw secret out of plain text.
func Encode(secret string) string {
	return base64.StdEncoding.EncodeToString([]byte(secret))
}

// Decode is the exact inverse of Encode. It returns ErrMalformedToken for
// input that is not valid output of Encode and never panics.
func Decode(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrMalformedToken
	}
	return string(raw), nil
}

// Gate compares candidates against an expected secret injected at
// construction time, so it is testable without process-wide environment
// mutation.
type Gate struct {
	expected string
}

func NewGate(expected string) *Gate {
	return &Gate{expected: expected}
}

// Validate accepts iff the candidate equals the expected secret, exact
// case-sensitive string match.
func (g *Gate) Validate(candidate string) error {
	if candidate != g.expected {
		return ErrPasskeyRejected
	}
	return nil
}

// Admit validates the candidate and, on acceptance, persists its obfuscated
// form under StorageKey. Nothing is stored on rejection.
func (g *Gate) Admit(store Store, candidate string) error {
	if err := g.Validate(candidate); err != nil {
		return err
	}
	store.Set(StorageKey, Encode(candidate))
	return nil
}

// Authorize re-checks a previously admitted caller: it reads the stored
// token, decodes it, and validates the result against the expected secret.
// Every failure mode collapses into ErrNotAdmitted.
func (g *Gate) Authorize(store Store) error {
	token, ok := store.Get(StorageKey)
	if !ok {
		return ErrNotAdmitted
	}
	secret, err := Decode(token)
	if err != nil {
		return ErrNotAdmitted
	}
	if err := g.Validate(secret); err != nil {
		return ErrNotAdmitted
	}
	return nil
}
