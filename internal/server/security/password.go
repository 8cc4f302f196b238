// Package security contains the credential primitives of the service:
// bcrypt password hashing, the JWT token codec, and stream key generation.
package security

import (
	"fmt"

	"github.com/streamcast/user-service/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when the configured cost is zero.
const DefaultBcryptCost = 12

// HashPassword hashes a password with bcrypt at the given cost.
// An empty password is rejected with common.ErrInvalidInput.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: empty password", common.ErrInvalidInput)
	}
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. It fails closed:
// empty input, a mismatch, and a malformed hash all return false, so callers
// cannot distinguish a wrong password from a corrupt hash.
func VerifyPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
