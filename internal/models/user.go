package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for a user account.
// ID (UUID) is the internal identity; UserID is the public sequential integer.
type User struct {
	ID             string         `db:"id"`
	UserID         int64          `db:"user_id"`
	Username       string         `db:"username"`
	Name           string         `db:"name"`
	Email          sql.NullString `db:"email"`
	Phone          sql.NullString `db:"phone"`
	PasswordHash   sql.NullString `db:"password_hash"`
	GoogleID       sql.NullString `db:"google_id"`
	IsGoogleSignup bool           `db:"is_google_signup"`
	DateOfBirth    sql.NullTime   `db:"date_of_birth"`
	Gender         sql.NullString `db:"gender"`
	ProfilePicture sql.NullString `db:"profile_picture"`
	CreatedAt      time.Time      `db:"created_at"`
}
