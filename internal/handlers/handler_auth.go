package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
	"github.com/myanimeverse/animeverse_backend/internal/middleware"
	"github.com/myanimeverse/animeverse_backend/internal/platform/session"
)

// AuthHandler handles registration, login and session related requests.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	googleAuth  portssvc.GoogleAuthSvcFacade
	sessions    *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ga portssvc.GoogleAuthSvcFacade, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		userService: us,
		googleAuth:  ga,
		sessions:    sessions,
	}
}

// AuthSuccessResponse is the envelope returned by login and signup routes.
type AuthSuccessResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    dto.UserResponse `json:"user"`
}

// RegisterAuthRoutes sets up the routes for authentication.
func RegisterAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, sessions *session.Manager) {
	h := NewAuthHandler(services.User, services.GoogleAuth, sessions)

	// Credential-guessing protection: 5 attempts per minute per IP
	loginLimiter := middleware.NewIPRateLimit("5-M")

	r.POST("/adduser", h.Register)
	r.POST("/login", loginLimiter, h.Login)
	r.POST("/google-signup", h.GoogleSignup)
	r.GET("/api/check-auth", h.CheckAuth)
	r.POST("/api/logout", h.Logout)
}

// Register godoc
// @Summary Register a new account
// @Description Creates a password-based account with distinct conflict errors per duplicate field.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} AuthSuccessResponse
// @Failure 400 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /adduser [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthSuccessResponse{
		Success: true,
		Message: "User created successfully. Please login.",
		User:    dto.ToUserResponse(user),
	})
}

// Login godoc
// @Summary Log in with username and password
// @Description Authenticates a user and starts a server-side session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} AuthSuccessResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 429 {object} MessageResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Success: false, Message: "Username and password are required"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.sessions.LoginUser(c.Request.Context(), user.UserID, user.Username); err != nil {
		logger.Error("Failed to establish session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, MessageResponse{Success: false, Message: "Login failed - session error"})
		return
	}

	logger.Info("Login successful", slog.Int64("user_id", user.UserID))
	c.JSON(http.StatusOK, AuthSuccessResponse{
		Success: true,
		Message: "Login successful",
		User:    dto.ToUserResponse(user),
	})
}

// GoogleSignup godoc
// @Summary Sign up or log in with Google
// @Description Verifies a Google ID token (or exchanges an authorization code) server-side, then resolves or creates the account and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param credential body dto.GoogleSignupRequest true "Google credential or authorization code"
// @Success 200 {object} AuthSuccessResponse "Existing account logged in"
// @Success 201 {object} AuthSuccessResponse "New account created"
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /google-signup [post]
func (h *AuthHandler) GoogleSignup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.Credential == "" && req.Code == "" {
		c.JSON(http.StatusBadRequest, MessageResponse{Success: false, Message: "Google credential is required"})
		return
	}

	var (
		info *domain.GoogleUserInfo
		err  error
	)
	if req.Credential != "" {
		info, err = h.googleAuth.VerifyCredential(c.Request.Context(), req.Credential)
	} else {
		info, err = h.googleAuth.ExchangeCode(c.Request.Context(), req.Code)
	}
	if err != nil {
		logger.Warn("Google credential verification failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, MessageResponse{Success: false, Message: "Invalid Google credential"})
		return
	}

	user, created, err := h.userService.GetOrCreateGoogleUser(c.Request.Context(), *info)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.sessions.LoginUser(c.Request.Context(), user.UserID, user.Username); err != nil {
		logger.Error("Failed to establish session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, MessageResponse{Success: false, Message: "Login failed - session error"})
		return
	}

	status := http.StatusOK
	message := "Login successful"
	if created {
		status = http.StatusCreated
		message = "User created successfully"
	}
	c.JSON(status, AuthSuccessResponse{
		Success: true,
		Message: message,
		User:    dto.ToUserResponse(user),
	})
}

// CheckAuth godoc
// @Summary Check session state
// @Description Mirrors the server-side session back to the client.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.CheckAuthResponse
// @Router /api/check-auth [get]
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	userID, ok := h.sessions.UserID(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, dto.CheckAuthResponse{Authenticated: false})
		return
	}

	user, err := h.userService.GetUserByPublicID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// The account vanished under the session.
			c.JSON(http.StatusOK, dto.CheckAuthResponse{Authenticated: false})
			return
		}
		respondError(c, err)
		return
	}

	resp := dto.CheckAuthResponse{
		Authenticated: true,
		UserID:        user.UserID,
		Username:      user.Username,
		Name:          user.Name,
		Email:         user.Email,
	}
	if loginTime, ok := h.sessions.LoginTime(c.Request.Context()); ok {
		resp.LoginTime = &loginTime
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Description Destroys the server-side session and expires the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.LogoutUser(c.Request.Context()); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Logout failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, MessageResponse{Success: false, Message: "Logout failed"})
		return
	}
	respondMessage(c, http.StatusOK, "Logout successful")
}
