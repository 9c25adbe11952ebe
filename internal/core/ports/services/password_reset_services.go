package services

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/dto"
)

// PasswordResetSvcFacade drives the three-step OTP reset flow. No session is
// required at any step; the OTP record itself is the only state.
type PasswordResetSvcFacade interface {
	// RequestReset validates the account (exists, not Google-based, not
	// ambiguous across accounts sharing the email), then generates, stores
	// and emails a one-time code.
	RequestReset(ctx context.Context, email string) error

	// VerifyOTP checks the code matches and is inside the validity window.
	VerifyOTP(ctx context.Context, email, code string) error

	// ResetPassword re-validates the OTP, stores the new password hash and
	// deletes the consumed OTP record.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

// OTPMailer delivers one-time codes. Implemented by the SMTP mailer in
// platform/mail; faked in tests.
type OTPMailer interface {
	SendOTP(ctx context.Context, to, code string) error
}
