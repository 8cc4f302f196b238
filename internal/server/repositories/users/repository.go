// Package users declares the repository contract for account rows in
// persistent storage.
package users

import (
	"context"

	"github.com/streamcast/user-service/internal/server/models"
)

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// untouched.
type ProfileUpdate struct {
	FirstName       *string
	LastName        *string
	Bio             *string
	ProfileImageURL *string
}

// Repository defines lookup and mutation operations on users. Implementations
// return common.ErrorNotFound when a lookup matches no row.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByStreamKey(ctx context.Context, streamKey string) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, error)

	// Update applies the non-nil fields of upd and returns the updated row.
	Update(ctx context.Context, id int64, upd *ProfileUpdate) (*models.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// UpdateStreamKey replaces the stored stream key.
	UpdateStreamKey(ctx context.Context, id int64, streamKey string) error

	// SetActive flips the active flag.
	SetActive(ctx context.Context, id int64, active bool) error

	// Delete removes the row and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
