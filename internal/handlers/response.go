package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/middleware"
)

// MessageResponse is the {success, message} envelope every endpoint speaks.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondError maps service errors onto the wire envelope. Anything that is
// not a classified AppError becomes a generic 500; internals never reach the
// client.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, MessageResponse{Success: false, Message: appErr.Message})
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled error in handler",
		slog.String("error", err.Error()),
		slog.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, MessageResponse{Success: false, Message: "Internal server error"})
}

// respondMessage writes a bare success envelope.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Success: true, Message: message})
}

// bindError reports a request-body binding failure in the envelope shape.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, MessageResponse{Success: false, Message: "Invalid request format: " + err.Error()})
}
