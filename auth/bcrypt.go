package auth

import (
	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor used when none is configured.
const DefaultHashCost = 14

// BcryptHasher implements PasswordAuthenticator with a fixed work factor.
// A zero or out-of-range Cost falls back to DefaultHashCost.
type BcryptHasher struct {
	Cost int
}

// Verify interface compliance
var _ PasswordAuthenticator = BcryptHasher{}

func (h BcryptHasher) HashPassword(password string) (string, error) {
	return HashPasswordCost(password, h.Cost)
}

func (h BcryptHasher) ComparePasswordAndHash(password, hash string) error {
	return ComparePasswordAndHash(password, hash)
}

// HashPasswordCost hashes a password with an explicit bcrypt work factor.
func HashPasswordCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}
	return string(h), nil
}

// ComparePasswordAndHash will validate the given cleartext password matches
// the hashed password. A stored hash that bcrypt cannot parse is reported as
// a mismatch rather than surfaced as a distinct integrity error.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatchedHashAndPassword
	}
	return nil
}
