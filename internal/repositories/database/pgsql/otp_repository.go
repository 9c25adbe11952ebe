package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	"github.com/myanimeverse/animeverse_backend/internal/models"
)

// otpTTL bounds how long a one-time code stays usable. Expired rows are
// purged on access because Postgres has no TTL index.
const otpTTL = 5 * time.Minute

type PgxOTPRepository struct {
	BaseRepository
}

func NewPgxOTPRepository(db *pgxpool.Pool) *PgxOTPRepository {
	return &PgxOTPRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxOTPRepository implements portsrepo.OTPRepositoryFacade
var _ portsrepo.OTPRepositoryFacade = (*PgxOTPRepository)(nil)

func (r *PgxOTPRepository) SaveOTP(ctx context.Context, otp domain.PasswordResetOTP) error {
	// A newer request supersedes any code still pending for the email.
	query := `
        INSERT INTO otps (email, otp, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (email) DO UPDATE SET otp = EXCLUDED.otp, created_at = EXCLUDED.created_at;
    `
	_, err := r.Pool.Exec(ctx, query, otp.Email, otp.Code, otp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save otp: %w", err)
	}
	return nil
}

func (r *PgxOTPRepository) FindOTP(ctx context.Context, email, code string) (*domain.PasswordResetOTP, error) {
	if err := r.purgeExpired(ctx); err != nil {
		return nil, err
	}
	query := `SELECT email, otp, created_at FROM otps WHERE email = $1 AND otp = $2;`
	var m models.OTP
	err := r.Pool.QueryRow(ctx, query, email, code).Scan(&m.Email, &m.Code, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find otp: %w", err)
	}
	return &domain.PasswordResetOTP{Email: m.Email, Code: m.Code, CreatedAt: m.CreatedAt}, nil
}

func (r *PgxOTPRepository) DeleteOTP(ctx context.Context, email, code string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM otps WHERE email = $1 AND otp = $2;`, email, code)
	if err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}

func (r *PgxOTPRepository) purgeExpired(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-otpTTL)
	_, err := r.Pool.Exec(ctx, `DELETE FROM otps WHERE created_at < $1;`, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge expired otps: %w", err)
	}
	return nil
}
