package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
	"github.com/myanimeverse/animeverse_backend/internal/utils"
)

// userServiceImpl implements the UserSvcFacade interface
type userServiceImpl struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	counterRepo portsrepo.CounterRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, counterRepo portsrepo.CounterRepositoryFacade) portssvc.UserSvcFacade {
	return &userServiceImpl{
		userRepo:    userRepo,
		counterRepo: counterRepo,
	}
}

// Ensure userServiceImpl implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

// findConflict runs one uniqueness probe and maps repo outcomes onto the
// registration conflict rules. A nil return means the value is free.
func (s *userServiceImpl) findConflict(ctx context.Context, find func(context.Context) (*domain.User, error), conflictErr error) error {
	_, err := find(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	return conflictErr
}

func (s *userServiceImpl) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	// Each uniqueness rule carries its own client-facing message, so the
	// probes run one at a time rather than as a single query.
	if err := s.findConflict(ctx, func(ctx context.Context) (*domain.User, error) {
		return s.userRepo.FindUserByUsername(ctx, req.Username)
	}, apperrors.NewBadRequestError("Username already exists")); err != nil {
		return nil, err
	}

	if err := s.findConflict(ctx, func(ctx context.Context) (*domain.User, error) {
		return s.userRepo.FindUserByName(ctx, req.Name)
	}, apperrors.NewBadRequestError("A user with this name already exists. Please use a different name.")); err != nil {
		return nil, err
	}

	if req.Phone != "" {
		if err := s.findConflict(ctx, func(ctx context.Context) (*domain.User, error) {
			return s.userRepo.FindUserByPhone(ctx, req.Phone)
		}, apperrors.NewConflictError("This phone number is already associated with an existing account.")); err != nil {
			return nil, err
		}
	}

	if req.Email != "" {
		if err := s.findConflict(ctx, func(ctx context.Context) (*domain.User, error) {
			return s.userRepo.FindUserByEmail(ctx, req.Email)
		}, apperrors.NewConflictError("This email is already associated with an existing account.")); err != nil {
			return nil, err
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date of birth format, expected YYYY-MM-DD")
		}
		dob = &parsed
	}

	publicID, err := s.counterRepo.Next(ctx, portsrepo.CounterUsers)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate user id")
		return nil, fmt.Errorf("failed to allocate user id: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		UserID:       publicID,
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		DateOfBirth:  dob,
		Gender:       domain.Gender(req.Gender),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// Unique constraints catch races the pre-checks missed; the repo
		// already translated those to field-specific conflicts.
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", user.UserID))
	return &user, nil
}

func (s *userServiceImpl) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same message as a wrong password, so the response does not
			// reveal which usernames exist.
			return nil, apperrors.NewUnauthorizedError("Invalid username or password")
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if user.IsGoogleSignup {
		return nil, apperrors.NewUnauthorizedError("This account was created with Google. Please use Google Sign-In instead.")
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Invalid username or password")
	}

	return user, nil
}

func (s *userServiceImpl) GetOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, bool, error) {
	existing, err := s.userRepo.FindUserByGoogleID(ctx, info.Sub)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up google user: %w", err)
	}

	if info.Email != "" {
		other, err := s.userRepo.FindUserByEmail(ctx, info.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to check email for google signup: %w", err)
		}
		if other != nil {
			if !other.IsGoogleSignup {
				return nil, false, apperrors.NewConflictError("This email is already associated with a regular account. Please use your username and password to login, or use a different Google account.")
			}
			return nil, false, apperrors.NewConflictError("This email is already associated with another Google account.")
		}
	}

	username, err := s.deriveUsername(ctx, info)
	if err != nil {
		return nil, false, err
	}

	email := info.Email
	if email == "" {
		email = info.Sub + "@google.com"
	}

	publicID, err := s.counterRepo.Next(ctx, portsrepo.CounterUsers)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate user id")
		return nil, false, fmt.Errorf("failed to allocate user id: %w", err)
	}

	user := domain.User{
		ID:             uuid.NewString(),
		UserID:         publicID,
		Username:       username,
		Name:           info.Name,
		Email:          email,
		GoogleID:       info.Sub,
		IsGoogleSignup: true,
		ProfilePicture: info.Picture,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save google user", slog.String("google_sub", info.Sub))
		return nil, false, err
	}

	s.LogInfo(ctx, "Google user registered", slog.Int64("user_id", user.UserID))
	return &user, true, nil
}

// deriveUsername builds a username from the email local part (or the google
// subject when there is no email) and appends a numeric suffix until free.
func (s *userServiceImpl) deriveUsername(ctx context.Context, info domain.GoogleUserInfo) (string, error) {
	base := ""
	if info.Email != "" {
		base = strings.SplitN(info.Email, "@", 2)[0]
	}
	if base == "" {
		sub := info.Sub
		if len(sub) > 8 {
			sub = sub[:8]
		}
		base = "user_" + sub
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		_, err := s.userRepo.FindUserByUsername(ctx, candidate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to probe username %q: %w", candidate, err)
		}
		candidate = fmt.Sprintf("%s%d", base, suffix)
	}
}

func (s *userServiceImpl) GetUserByPublicID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByPublicID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (s *userServiceImpl) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}
