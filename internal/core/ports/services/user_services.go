package services

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByPublicID retrieves a user by public sequential identifier.
	GetUserByPublicID(ctx context.Context, userID int64) (*domain.User, error)

	// GetUserByUsername retrieves a user by exact username match.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserRegistrationSvc defines operations for creating accounts
type UserRegistrationSvc interface {
	// RegisterUser creates a password-based account, enforcing the distinct
	// uniqueness checks on username, name, phone and email.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetOrCreateGoogleUser resolves a verified Google identity to an
	// account, creating one (with a derived username) when none exists.
	// The bool result reports whether a new account was created.
	GetOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, bool, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with username and password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserRegistrationSvc
	UserAuthSvc
}
