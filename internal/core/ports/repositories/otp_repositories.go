package repositories

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// OTPRepositoryFacade defines storage operations for password-reset OTPs.
// Implementations purge expired rows on access in lieu of a TTL index.
type OTPRepositoryFacade interface {
	// SaveOTP persists a one-time code for an email.
	SaveOTP(ctx context.Context, otp domain.PasswordResetOTP) error

	// FindOTP retrieves the record matching both email and code.
	FindOTP(ctx context.Context, email, code string) (*domain.PasswordResetOTP, error)

	// DeleteOTP removes a consumed or expired record.
	DeleteOTP(ctx context.Context, email, code string) error
}
