package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
	"github.com/myanimeverse/animeverse_backend/internal/utils"
)

// passwordResetServiceImpl implements the PasswordResetSvcFacade interface
type passwordResetServiceImpl struct {
	BaseService
	userRepo  portsrepo.UserRepositoryFacade
	otpRepo   portsrepo.OTPRepositoryFacade
	mailer    portssvc.OTPMailer
	otpExpiry time.Duration
	now       func() time.Time
}

func NewPasswordResetService(userRepo portsrepo.UserRepositoryFacade, otpRepo portsrepo.OTPRepositoryFacade, mailer portssvc.OTPMailer, otpExpiry time.Duration) portssvc.PasswordResetSvcFacade {
	return &passwordResetServiceImpl{
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		mailer:    mailer,
		otpExpiry: otpExpiry,
		now:       time.Now,
	}
}

// Ensure passwordResetServiceImpl implements the PasswordResetSvcFacade interface
var _ portssvc.PasswordResetSvcFacade = (*passwordResetServiceImpl)(nil)

// resetEligibleUser checks that the email maps to exactly one password-based
// account and returns it.
func (s *passwordResetServiceImpl) resetEligibleUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Email does not exist!")
		}
		return nil, fmt.Errorf("failed to look up email for reset: %w", err)
	}

	if user.IsGoogleSignup {
		return nil, apperrors.NewBadRequestError("This email is associated with a Google account. Please use Google Sign-In to access your account.")
	}

	all, err := s.userRepo.FindUsersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email ambiguity: %w", err)
	}
	if len(all) > 1 {
		hasGoogle, hasRegular := false, false
		for _, u := range all {
			if u.IsGoogleSignup {
				hasGoogle = true
			} else {
				hasRegular = true
			}
		}
		if hasGoogle && hasRegular {
			return nil, apperrors.NewConflictError("This email is associated with multiple accounts. Please try logging in with your username or use Google Sign-In.")
		}
	}

	return user, nil
}

func (s *passwordResetServiceImpl) RequestReset(ctx context.Context, email string) error {
	if _, err := s.resetEligibleUser(ctx, email); err != nil {
		return err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate otp")
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	otp := domain.PasswordResetOTP{
		Email:     email,
		Code:      code,
		CreatedAt: s.now().UTC(),
	}
	if err := s.otpRepo.SaveOTP(ctx, otp); err != nil {
		s.LogError(ctx, err, "Failed to store otp")
		return fmt.Errorf("failed to store otp: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		s.LogError(ctx, err, "Failed to send otp email", slog.String("email", email))
		return apperrors.NewInternalServerError("Failed to send OTP email")
	}

	s.LogInfo(ctx, "OTP sent", slog.String("email", email))
	return nil
}

// checkOTP validates existence and age of the stored code. Expired codes are
// deleted on sight.
func (s *passwordResetServiceImpl) checkOTP(ctx context.Context, email, code string) error {
	otp, err := s.otpRepo.FindOTP(ctx, email, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBadRequestError("Invalid OTP!")
		}
		return fmt.Errorf("failed to look up otp: %w", err)
	}

	if s.now().UTC().Sub(otp.CreatedAt) > s.otpExpiry {
		if err := s.otpRepo.DeleteOTP(ctx, email, code); err != nil {
			s.LogError(ctx, err, "Failed to delete expired otp")
		}
		return apperrors.NewBadRequestError("OTP has expired!")
	}
	return nil
}

func (s *passwordResetServiceImpl) VerifyOTP(ctx context.Context, email, code string) error {
	return s.checkOTP(ctx, email, code)
}

func (s *passwordResetServiceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.NewBadRequestError("Passwords do not match!")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found!")
		}
		return fmt.Errorf("failed to look up user for reset: %w", err)
	}

	if user.IsGoogleSignup {
		return apperrors.NewBadRequestError("This account was created with Google. Password reset is not allowed.")
	}

	// The OTP is re-validated here; passing the verify step earlier grants
	// nothing by itself.
	if err := s.checkOTP(ctx, req.Email, req.OTP); err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.Int64("user_id", user.UserID))
		return err
	}

	if err := s.otpRepo.DeleteOTP(ctx, req.Email, req.OTP); err != nil {
		// The password change already happened; a stale row only shortens
		// the code's remaining window.
		s.LogError(ctx, err, "Failed to delete consumed otp")
	}

	s.LogInfo(ctx, "Password reset", slog.Int64("user_id", user.UserID))
	return nil
}
