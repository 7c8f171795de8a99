// Package hashx provides the one-way digest used for stored credentials.
//
// The digest is a plain, unsalted SHA-256 encoded as 64 lower-case hex
// characters. That matches the behavior this application was ported from;
// it is deliberately not upgraded to a salted KDF here (see DESIGN.md).
// Hashing may be unavailable in a degraded runtime, which implementations
// signal with ErrUnavailable rather than panicking.
package hashx

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrUnavailable indicates the runtime cannot perform secure hashing.
// Callers decide per flow whether this is fatal: signup refuses to proceed,
// legacy-credential login continues without migrating.
var ErrUnavailable = errors.New("secure hashing unavailable")

// Hasher computes a deterministic hex-encoded digest of a plaintext.
// For any input x, Sum(x) == Sum(x); distinct inputs collide only with
// cryptographically negligible probability.
type Hasher interface {
	Sum(plaintext string) (string, error)
}

// SHA256 is the production Hasher.
type SHA256 struct{}

// NewSHA256 returns the standard SHA-256 Hasher.
func NewSHA256() *SHA256 { return &SHA256{} }

// Sum returns the hex-encoded SHA-256 digest of plaintext.
func (h *SHA256) Sum(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

// Unavailable is a Hasher that always fails with ErrUnavailable. It models
// a runtime without secure hashing and backs the degraded-path tests.
type Unavailable struct{}

// Sum always returns ErrUnavailable.
func (Unavailable) Sum(string) (string, error) { return "", ErrUnavailable }
