package domain

import "time"

// PasswordResetOTP is a transient one-time code authorizing a password reset
// for the given email. Valid for a fixed window from CreatedAt.
type PasswordResetOTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"otp"`
	CreatedAt time.Time `json:"createdAt"`
}
