package repositories

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByInternalID retrieves a user by internal identity (UUID).
	FindUserByInternalID(ctx context.Context, id string) (*domain.User, error)

	// FindUserByPublicID retrieves a user by public sequential identifier.
	FindUserByPublicID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByUsername retrieves a user by exact username match.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsersByEmail retrieves every account sharing an email,
	// case-insensitively. Used to detect ambiguous reset requests.
	FindUsersByEmail(ctx context.Context, email string) ([]domain.User, error)

	// FindUserByName retrieves a user by name, case-insensitively.
	FindUserByName(ctx context.Context, name string) (*domain.User, error)

	// FindUserByPhone retrieves a user by exact phone match.
	FindUserByPhone(ctx context.Context, phone string) (*domain.User, error)

	// FindUserByGoogleID retrieves a user by Google subject identifier.
	FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdatePassword stores a new password hash for a user.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
