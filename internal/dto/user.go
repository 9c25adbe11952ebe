package dto

import (
	"time"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// RegisterRequest defines the body of POST /adduser.
// Field names mirror the wire format the frontend sends.
type RegisterRequest struct {
	Username    string `json:"user_name" binding:"required,notblank"`
	Password    string `json:"password" binding:"required,min=6"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"omitempty"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other prefer-not-to-say"`
}

// LoginRequest defines the body of POST /login.
type LoginRequest struct {
	Username string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignupRequest defines the body of POST /google-signup. Exactly one of
// Credential (a Google ID token, verified server-side) or Code (an OAuth
// authorization code, exchanged server-side) must be provided.
type GoogleSignupRequest struct {
	Credential string `json:"credential"`
	Code       string `json:"code"`
}

// UserResponse is the public profile returned after login/signup.
type UserResponse struct {
	UserID   int64  `json:"userId"`
	Name     string `json:"name"`
	Username string `json:"user_name"`
	Email    string `json:"email,omitempty"`
}

// ToUserResponse converts a domain User to its public profile shape.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
	}
}

// CheckAuthResponse mirrors the server-side session state for the client.
type CheckAuthResponse struct {
	Authenticated bool       `json:"authenticated"`
	UserID        int64      `json:"userId,omitempty"`
	Username      string     `json:"username,omitempty"`
	Name          string     `json:"name,omitempty"`
	Email         string     `json:"email,omitempty"`
	LoginTime     *time.Time `json:"loginTime,omitempty"`
}
