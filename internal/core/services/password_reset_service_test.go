package services_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/core/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
	"github.com/myanimeverse/animeverse_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OTPRepository ---
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) SaveOTP(ctx context.Context, otp domain.PasswordResetOTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindOTP(ctx context.Context, email, code string) (*domain.PasswordResetOTP, error) {
	args := m.Called(ctx, email, code)
	var otp *domain.PasswordResetOTP
	if args.Get(0) != nil {
		otp = args.Get(0).(*domain.PasswordResetOTP)
	}
	return otp, args.Error(1)
}

func (m *MockOTPRepository) DeleteOTP(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.OTPRepositoryFacade = (*MockOTPRepository)(nil)

// --- Mock OTPMailer ---
type MockOTPMailer struct {
	mock.Mock
}

func (m *MockOTPMailer) SendOTP(ctx context.Context, to, code string) error {
	args := m.Called(ctx, to, code)
	return args.Error(0)
}

var _ portssvc.OTPMailer = (*MockOTPMailer)(nil)

// --- Test Suite ---
type PasswordResetServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockOTPRepo  *MockOTPRepository
	mockMailer   *MockOTPMailer
	service      portssvc.PasswordResetSvcFacade

	user *domain.User
}

const testOTPExpiry = 5 * time.Minute

func (suite *PasswordResetServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockOTPRepo = new(MockOTPRepository)
	suite.mockMailer = new(MockOTPMailer)
	suite.service = services.NewPasswordResetService(suite.mockUserRepo, suite.mockOTPRepo, suite.mockMailer, testOTPExpiry)

	suite.user = &domain.User{ID: uuid.NewString(), UserID: 7, Username: "lightfan", Email: "light@example.com"}
}

// --- RequestReset Tests ---

func (suite *PasswordResetServiceTestSuite) TestRequestReset_Success() {
	ctx := context.Background()
	email := suite.user.Email
	sixDigits := regexp.MustCompile(`^\d{6}$`)

	var stored string
	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(suite.user, nil).Once()
	suite.mockUserRepo.On("FindUsersByEmail", ctx, email).Return([]domain.User{*suite.user}, nil).Once()
	suite.mockOTPRepo.On("SaveOTP", ctx, mock.MatchedBy(func(otp domain.PasswordResetOTP) bool {
		stored = otp.Code
		return otp.Email == email && sixDigits.MatchString(otp.Code)
	})).Return(nil).Once()
	suite.mockMailer.On("SendOTP", ctx, email, mock.MatchedBy(func(code string) bool {
		// The mailed code must be the stored one
		return code == stored
	})).Return(nil).Once()

	err := suite.service.RequestReset(ctx, email)

	suite.Require().NoError(err)
	suite.mockOTPRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *PasswordResetServiceTestSuite) TestRequestReset_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RequestReset(ctx, "nobody@example.com")

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(404, appErr.Code)
	suite.Equal("Email does not exist!", appErr.Message)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *PasswordResetServiceTestSuite) TestRequestReset_GoogleAccount() {
	ctx := context.Background()
	googleUser := &domain.User{Email: "g@example.com", IsGoogleSignup: true}

	suite.mockUserRepo.On("FindUserByEmail", ctx, googleUser.Email).Return(googleUser, nil).Once()

	err := suite.service.RequestReset(ctx, googleUser.Email)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.Contains(appErr.Message, "Google Sign-In")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *PasswordResetServiceTestSuite) TestRequestReset_AmbiguousEmail() {
	ctx := context.Background()
	email := "shared@example.com"
	regular := domain.User{Email: email, IsGoogleSignup: false}
	google := domain.User{Email: email, IsGoogleSignup: true}

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(&regular, nil).Once()
	suite.mockUserRepo.On("FindUsersByEmail", ctx, email).Return([]domain.User{regular, google}, nil).Once()

	err := suite.service.RequestReset(ctx, email)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)
	suite.Contains(appErr.Message, "multiple accounts")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *PasswordResetServiceTestSuite) TestRequestReset_MailerFailure() {
	ctx := context.Background()
	email := suite.user.Email

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(suite.user, nil).Once()
	suite.mockUserRepo.On("FindUsersByEmail", ctx, email).Return([]domain.User{*suite.user}, nil).Once()
	suite.mockOTPRepo.On("SaveOTP", ctx, mock.AnythingOfType("domain.PasswordResetOTP")).Return(nil).Once()
	suite.mockMailer.On("SendOTP", ctx, email, mock.AnythingOfType("string")).Return(assert.AnError).Once()

	err := suite.service.RequestReset(ctx, email)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(500, appErr.Code)
	suite.Equal("Failed to send OTP email", appErr.Message)
	suite.mockMailer.AssertExpectations(suite.T())
}

// --- VerifyOTP Tests ---

func (suite *PasswordResetServiceTestSuite) TestVerifyOTP_Success() {
	ctx := context.Background()
	otp := &domain.PasswordResetOTP{Email: suite.user.Email, Code: "123456", CreatedAt: time.Now().UTC()}

	suite.mockOTPRepo.On("FindOTP", ctx, otp.Email, otp.Code).Return(otp, nil).Once()

	err := suite.service.VerifyOTP(ctx, otp.Email, otp.Code)

	suite.Require().NoError(err)
	suite.mockOTPRepo.AssertExpectations(suite.T())
}

func (suite *PasswordResetServiceTestSuite) TestVerifyOTP_Invalid() {
	ctx := context.Background()

	suite.mockOTPRepo.On("FindOTP", ctx, suite.user.Email, "000000").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.VerifyOTP(ctx, suite.user.Email, "000000")

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.Equal("Invalid OTP!", appErr.Message)
	suite.mockOTPRepo.AssertExpectations(suite.T())
}

func (suite *PasswordResetServiceTestSuite) TestVerifyOTP_Expired() {
	ctx := context.Background()
	stale := &domain.PasswordResetOTP{
		Email:     suite.user.Email,
		Code:      "123456",
		CreatedAt: time.Now().UTC().Add(-testOTPExpiry - time.Minute),
	}

	suite.mockOTPRepo.On("FindOTP", ctx, stale.Email, stale.Code).Return(stale, nil).Once()
	// Expired codes are removed as soon as they are seen
	suite.mockOTPRepo.On("DeleteOTP", ctx, stale.Email, stale.Code).Return(nil).Once()

	err := suite.service.VerifyOTP(ctx, stale.Email, stale.Code)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.Equal("OTP has expired!", appErr.Message)
	suite.mockOTPRepo.AssertExpectations(suite.T())
}

// --- ResetPassword Tests ---

func (suite *PasswordResetServiceTestSuite) TestResetPassword_Success() {
	ctx := context.Background()
	req := dto.ResetPasswordRequest{
		Email:           suite.user.Email,
		OTP:             "123456",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	}
	otp := &domain.PasswordResetOTP{Email: req.Email, Code: req.OTP, CreatedAt: time.Now().UTC()}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(suite.user, nil).Once()
	suite.mockOTPRepo.On("FindOTP", ctx, req.Email, req.OTP).Return(otp, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", ctx, suite.user.ID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash(req.NewPassword, hash)
	})).Return(nil).Once()
	suite.mockOTPRepo.On("DeleteOTP", ctx, req.Email, req.OTP).Return(nil).Once()

	err := suite.service.ResetPassword(ctx, req)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockOTPRepo.AssertExpectations(suite.T())
}

func (suite *PasswordResetServiceTestSuite) TestResetPassword_PasswordMismatch() {
	ctx := context.Background()
	req := dto.ResetPasswordRequest{
		Email:           suite.user.Email,
		OTP:             "123456",
		NewPassword:     "newsecret",
		ConfirmPassword: "different",
	}

	err := suite.service.ResetPassword(ctx, req)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.Equal("Passwords do not match!", appErr.Message)
}

func (suite *PasswordResetServiceTestSuite) TestResetPassword_GoogleAccount() {
	ctx := context.Background()
	googleUser := &domain.User{ID: uuid.NewString(), Email: "g@example.com", IsGoogleSignup: true}
	req := dto.ResetPasswordRequest{
		Email:           googleUser.Email,
		OTP:             "123456",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(googleUser, nil).Once()

	err := suite.service.ResetPassword(ctx, req)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.Contains(appErr.Message, "created with Google")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *PasswordResetServiceTestSuite) TestResetPassword_ReValidatesOTP() {
	ctx := context.Background()
	req := dto.ResetPasswordRequest{
		Email:           suite.user.Email,
		OTP:             "654321",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(suite.user, nil).Once()
	suite.mockOTPRepo.On("FindOTP", ctx, req.Email, req.OTP).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ResetPassword(ctx, req)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.Equal("Invalid OTP!", appErr.Message)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	suite.mockOTPRepo.AssertExpectations(suite.T())
}

func TestPasswordResetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PasswordResetServiceTestSuite))
}
