package models

import "time"

// User is an account row. Email, UserName, and StreamKey are each globally
// unique; uniqueness is enforced by the database and checked pre-insert by
// the user service.
type User struct {
	ID              int64
	Email           string
	UserName        string
	PasswordHash    string
	FirstName       string
	LastName        string
	Bio             string
	ProfileImageURL string
	StreamKey       string
	IsActive        bool
	IsVerified      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
