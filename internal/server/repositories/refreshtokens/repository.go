// Package refreshtokens declares the repository contract for managing
// refresh tokens in persistent storage.
//
// The repository itself is bound to a dbx.DBTX; compound transitions such as
// "replace the user's active token" are composed by the auth service inside
// a dbx.WithTx transaction.
package refreshtokens

import (
	"context"
	"time"

	"github.com/streamcast/user-service/internal/server/models"
)

// Repository defines operations for issuing, retrieving, rotating, and
// revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token row for userID.
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error

	// DeleteAllForUser removes every refresh token row belonging to userID.
	// Combined with Create inside one transaction it enforces the
	// single-active-token-per-user policy.
	DeleteAllForUser(ctx context.Context, userID int64) error

	// FindByTokenAndUser looks up a row by exact token string and owner.
	// Implementations return common.ErrorNotFound when the row is absent.
	FindByTokenAndUser(ctx context.Context, token string, userID int64) (*models.RefreshToken, error)

	// Rotate replaces the token value and expiry of an existing row in place,
	// preserving the row identity.
	Rotate(ctx context.Context, id int64, newToken string, newExpiresAt time.Time) error

	// DeleteByToken removes a row by its token string and reports whether a
	// row existed.
	DeleteByToken(ctx context.Context, token string) (bool, error)
}
