package domain

import "time"

// Gender enumerates the accepted gender values for a user profile.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer-not-to-say"
)

// User represents a user of the application in the domain.
//
// ID is the internal identity (UUID) referenced by posts and comments for
// ownership checks. UserID is the public sequential integer exposed in the
// API and stored in the session. The two must never be conflated.
type User struct {
	ID             string     `json:"-"`      // Internal identity (UUID), FK target
	UserID         int64      `json:"userId"` // Public sequential identifier
	Username       string     `json:"user_name"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	PasswordHash   string     `json:"-"`
	GoogleID       string     `json:"-"`
	IsGoogleSignup bool       `json:"isGoogleSignup"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	Gender         Gender     `json:"gender,omitempty"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// GoogleUserInfo holds the identity claims extracted from a verified Google
// ID token.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
