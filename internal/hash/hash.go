// Package hash provides the password hashing strategies used for stored
// credentials. Two strategies exist: a deterministic SHA-256 digest kept
// for legacy employee records, and an adaptive salted bcrypt digest that
// gates interactive login.
package hash

import (
	"ecotech/internal/apperror"
)

// Hasher turns a plaintext secret into a storable digest and verifies
// candidates against stored digests.
type Hasher interface {
	// Hash returns the digest for plaintext. Empty plaintext is an
	// input error; a Hasher never produces an empty digest.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored digest.
	Verify(plaintext, digest string) bool
}

// NewHasher creates a Hasher for the given strategy name.
// Supported: "bcrypt" (default when name is empty) and "sha256".
func NewHasher(name string) (Hasher, error) {
	switch name {
	case "bcrypt", "":
		return NewBcryptHasher(), nil
	case "sha256":
		return NewSHA256Hasher(), nil
	default:
		return nil, apperror.Newf(apperror.CodeValidation, "unknown hash strategy: %q", name)
	}
}
