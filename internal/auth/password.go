// Package auth implements the credential and token primitives shared by the
// employer and job seeker account flows: bcrypt password hashing and
// HS256-signed access/refresh tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"jobboard/pkg/serrors"
)

// PasswordHasher hashes and verifies account passwords with bcrypt. Hashing
// is invoked only by the register and change-password code paths; profile
// updates never touch the stored hash.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given bcrypt cost factor.
// Out-of-range costs fall back to bcrypt's default.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return PasswordHasher{cost: cost}
}

// Hash generates a salted one-way hash of the password.
func (h PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", serrors.With(serrors.ErrBadRequest, "password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not hash password")
	}

	return string(hash), nil
}

// Verify reports whether the plaintext password matches the stored hash.
func (h PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
