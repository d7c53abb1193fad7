package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"ecotech/internal/apperror"
)

// SHA256Hasher is the legacy strategy: an unsalted hex digest. The same
// plaintext always yields the same digest, so it is only acceptable for
// internal seed records, never for externally exposed accounts.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher { return &SHA256Hasher{} }

func (h *SHA256Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", apperror.New(apperror.CodeValidation, "plaintext must not be empty")
	}
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

func (h *SHA256Hasher) Verify(plaintext, digest string) bool {
	computed, err := h.Hash(plaintext)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

var _ Hasher = (*SHA256Hasher)(nil)
