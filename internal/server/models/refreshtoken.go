package models

import "time"

// RefreshToken is a persisted refresh token row. At most one live row exists
// per user; rotation updates the row in place so the row identity survives.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
