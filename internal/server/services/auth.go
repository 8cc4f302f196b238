// Package services contains server-side business logic. This file implements
// AuthService, the session state machine: credential verification, issuing
// JWT access tokens, and rotating server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/streamcast/user-service/internal/common"
	"github.com/streamcast/user-service/internal/dbx"
	"github.com/streamcast/user-service/internal/server/config"
	"github.com/streamcast/user-service/internal/server/models"
	"github.com/streamcast/user-service/internal/server/repositories/repomanager"
	"github.com/streamcast/user-service/internal/server/security"
)

// TokenPair bundles a short-lived access token, a long-lived refresh token,
// and the access token lifetime in seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// AuthService provides the authentication lifecycle:
//   - Login: verify credentials and mint tokens
//   - Refresh: rotate refresh tokens and mint new access tokens
//   - Logout: revoke a refresh token
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Login verifies the email/password pair and, on success, returns a fresh
// TokenPair. An absent user and a wrong password are indistinguishable to the
// caller; the active flag is checked only after the credentials pass, so an
// inactive account with a wrong password still reports ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	users := s.repomanager.Users(s.db)

	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, common.ErrInactiveUser
	}

	pair, refreshExpiry, err := s.mintTokenPair(user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.storeRefreshToken(ctx, user.ID, pair.RefreshToken, refreshExpiry); err != nil {
		return nil, common.ErrorInternal
	}

	return pair, nil
}

// Refresh validates a refresh token, rotates the stored row in place, and
// returns a new TokenPair. Every failure mode collapses into
// ErrInvalidCredentials: bad signatures, wrong token type, rows consumed by a
// prior rotation or logout, expired rows (deleted lazily on discovery), and
// missing or inactive users.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := security.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if claims.TokenType != security.TokenTypeRefresh {
		return nil, common.ErrInvalidCredentials
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	repo := s.repomanager.RefreshTokens(s.db)

	row, err := repo.FindByTokenAndUser(ctx, refreshToken, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}

	if row.ExpiresAt.Before(time.Now()) {
		// lazy expiry cleanup
		if _, err := repo.DeleteByToken(ctx, refreshToken); err != nil {
			return nil, fmt.Errorf("error deleting expired refresh token: %w", err)
		}
		return nil, common.ErrInvalidCredentials
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	if !user.IsActive {
		return nil, common.ErrInvalidCredentials
	}

	pair, refreshExpiry, err := s.mintTokenPair(user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	// in-place rotation keeps the row identity; the old token string is now
	// permanently invalid
	if err := repo.Rotate(ctx, row.ID, pair.RefreshToken, refreshExpiry); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// the row was revoked between lookup and rotation
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	return pair, nil
}

// Logout revokes a refresh token and reports whether one was actually
// removed. It is idempotent: a second call with the same token is not an
// error, it simply reports false.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) (bool, error) {
	existed, err := s.repomanager.RefreshTokens(s.db).DeleteByToken(ctx, refreshToken)
	if err != nil {
		return false, fmt.Errorf("error deleting refresh token: %w", err)
	}
	return existed, nil
}

// ParseAccessToken verifies an access token and returns the subject's user id.
// Refresh tokens are rejected here so they cannot double as access tokens.
func (s *AuthService) ParseAccessToken(tokenString string) (int64, error) {
	claims, err := security.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return 0, common.ErrTokenInvalid
	}
	if claims.TokenType != security.TokenTypeAccess {
		return 0, common.ErrTokenInvalid
	}
	return claims.UserID()
}

// --- helpers below ---

func (s *AuthService) mintTokenPair(user *models.User) (*TokenPair, time.Time, error) {
	access, err := security.NewToken(user.ID, user.Email, security.TokenTypeAccess, s.accessTokenValidityDuration, s.jwtSecret)
	if err != nil {
		return nil, time.Time{}, err
	}
	refresh, err := security.NewToken(user.ID, "", security.TokenTypeRefresh, s.refreshTokenValidityDuration, s.jwtSecret)
	if err != nil {
		return nil, time.Time{}, err
	}
	pair := &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTokenValidityDuration.Seconds()),
	}
	return pair, time.Now().Add(s.refreshTokenValidityDuration), nil
}

// storeRefreshToken is the single-session-per-user policy hook: it replaces
// every refresh token the user holds with the new one, inside one
// transaction, so a crash cannot leave the rows in an ambiguous state.
func (s *AuthService) storeRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		if err := repoTx.DeleteAllForUser(ctx, userID); err != nil {
			return err
		}
		return repoTx.Create(ctx, userID, token, expiresAt)
	})
}
