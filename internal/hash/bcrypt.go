package hash

import (
	"golang.org/x/crypto/bcrypt"

	"ecotech/internal/apperror"
)

// BcryptCost is the work factor for new digests. Each increment doubles
// the time required to hash a password.
const BcryptCost = 12

// BcryptHasher is the adaptive salted strategy. Output embeds a random
// per-call salt and the cost, so two digests of the same plaintext
// differ while Verify still succeeds for both.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: BcryptCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", apperror.New(apperror.CodeValidation, "plaintext must not be empty")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", apperror.Wrap(apperror.CodeInternal, err, "hashing password")
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

var _ Hasher = (*BcryptHasher)(nil)
