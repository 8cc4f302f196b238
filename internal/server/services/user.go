// This file implements UserService: registration with uniqueness checks,
// profile management, password change, and stream key issuance/validation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/streamcast/user-service/internal/common"
	"github.com/streamcast/user-service/internal/server/config"
	"github.com/streamcast/user-service/internal/server/models"
	"github.com/streamcast/user-service/internal/server/repositories/repomanager"
	"github.com/streamcast/user-service/internal/server/repositories/users"
	"github.com/streamcast/user-service/internal/server/security"
)

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Email           string
	UserName        string
	Password        string
	FirstName       string
	LastName        string
	Bio             string
	ProfileImageURL string
}

// UserService provides account management operations on top of the users
// repository.
type UserService struct {
	db                *sql.DB
	repomanager       repomanager.RepositoryManager
	bcryptCost        int
	passwordMinLength int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                db,
		repomanager:       m,
		bcryptCost:        cfg.BcryptCost,
		passwordMinLength: cfg.PasswordMinLength,
	}
}

// Register creates a new account. Email and username are checked for
// collisions before the insert; the database unique constraints back the
// check under concurrent registration. A stream key is issued at creation.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Email == "" || in.UserName == "" {
		return nil, fmt.Errorf("%w: email and username are required", common.ErrInvalidInput)
	}
	if len(in.Password) < s.passwordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrInvalidInput, s.passwordMinLength)
	}

	repo := s.repomanager.Users(s.db)

	if err := s.checkUnique(ctx, repo, in.Email, in.UserName); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	streamKey, err := security.NewStreamKey()
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Email:           in.Email,
		UserName:        in.UserName,
		PasswordHash:    hash,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Bio:             in.Bio,
		ProfileImageURL: in.ProfileImageURL,
		StreamKey:       streamKey,
		IsActive:        true,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return created, nil
}

// GetByID returns the user or ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return user, nil
}

// List returns users ordered by id. A non-positive limit defaults to 100.
func (s *UserService) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := s.repomanager.Users(s.db).List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return list, nil
}

// Update applies a partial profile update and returns the updated user.
func (s *UserService) Update(ctx context.Context, id int64, upd *users.ProfileUpdate) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

// Delete removes the account or fails with ErrUserNotFound.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	existed, err := s.repomanager.Users(s.db).Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if !existed {
		return common.ErrUserNotFound
	}
	return nil
}

// ChangePassword verifies the current password and persists a hash of the new
// one. Outstanding sessions are deliberately left alive; revoking them here
// would change observed behavior for clients holding refresh tokens.
func (s *UserService) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	if len(newPassword) < s.passwordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrInvalidInput, s.passwordMinLength)
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserNotFound
		}
		return fmt.Errorf("error loading user: %w", err)
	}

	if !security.VerifyPassword(currentPassword, user.PasswordHash) {
		return common.ErrInvalidCredentials
	}

	hash, err := security.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := repo.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("error saving password: %w", err)
	}
	return nil
}

// RegenerateStreamKey issues a new stream key for the account and returns it.
// The old key stops validating immediately.
func (s *UserService) RegenerateStreamKey(ctx context.Context, id int64) (string, error) {
	key, err := security.NewStreamKey()
	if err != nil {
		return "", common.ErrorInternal
	}
	if err := s.repomanager.Users(s.db).UpdateStreamKey(ctx, id, key); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUserNotFound
		}
		return "", fmt.Errorf("error saving stream key: %w", err)
	}
	return key, nil
}

// ValidateStreamKey resolves a stream key to its owning user. Unknown keys
// return common.ErrorNotFound; keys of deactivated accounts return
// ErrInactiveUser.
func (s *UserService) ValidateStreamKey(ctx context.Context, streamKey string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByStreamKey(ctx, streamKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	if !user.IsActive {
		return nil, common.ErrInactiveUser
	}
	return user, nil
}

// SetActive flips the account's active flag (used by the internal RPC
// surface to mark accounts online/offline).
func (s *UserService) SetActive(ctx context.Context, id int64, active bool) error {
	if err := s.repomanager.Users(s.db).SetActive(ctx, id, active); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserNotFound
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

func (s *UserService) checkUnique(ctx context.Context, repo users.Repository, email, username string) error {
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return common.ErrUserAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error checking email: %w", err)
	}
	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return common.ErrUserAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error checking username: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (code 23505), the race-window fallback behind checkUnique.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
