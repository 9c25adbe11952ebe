package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
	"github.com/myanimeverse/animeverse_backend/internal/middleware"
)

// PasswordResetHandler drives the three-step OTP reset flow.
type PasswordResetHandler struct {
	resetService portssvc.PasswordResetSvcFacade
}

// NewPasswordResetHandler creates a new PasswordResetHandler.
func NewPasswordResetHandler(rs portssvc.PasswordResetSvcFacade) *PasswordResetHandler {
	return &PasswordResetHandler{resetService: rs}
}

// RegisterPasswordResetRoutes sets up the password-reset routes. None of them
// require a session; the OTP record is the only state.
func RegisterPasswordResetRoutes(r *gin.Engine, resetService portssvc.PasswordResetSvcFacade) {
	h := NewPasswordResetHandler(resetService)

	// OTP generation is both an email-sending and an enumeration vector,
	// so it gets the same per-IP budget as login.
	forgotLimiter := middleware.NewIPRateLimit("5-M")

	r.POST("/api/forgot-password", forgotLimiter, h.ForgotPassword)
	r.POST("/api/verify-otp", h.VerifyOTP)
	r.POST("/api/reset-password", h.ResetPassword)
}

// ForgotPassword godoc
// @Summary Request a password-reset OTP
// @Description Emails a 6-digit one-time code to an eligible account.
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Failure 429 {object} MessageResponse
// @Router /api/forgot-password [post]
func (h *PasswordResetHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.resetService.RequestReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "OTP sent successfully!")
}

// VerifyOTP godoc
// @Summary Verify a password-reset OTP
// @Description Checks the code matches and is inside its validity window.
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Email and code"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Router /api/verify-otp [post]
func (h *PasswordResetHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.resetService.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "OTP verified successfully!")
}

// ResetPassword godoc
// @Summary Reset a password with a verified OTP
// @Description Re-validates the OTP, stores the new password hash and consumes the code.
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/reset-password [post]
func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.resetService.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Password updated successfully!")
}
