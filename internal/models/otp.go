package models

import "time"

// OTP is the database row shape for a password-reset one-time code.
// Expired rows are purged on access since Postgres has no TTL index.
type OTP struct {
	Email     string    `db:"email"`
	Code      string    `db:"otp"`
	CreatedAt time.Time `db:"created_at"`
}
