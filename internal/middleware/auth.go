package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myanimeverse/animeverse_backend/internal/platform/session"
)

// SessionAuthMiddleware creates a Gin middleware handler that gates routes on
// a valid server-side session. The session cookie carries only an opaque
// token; identity lives in the sessions table.
func SessionAuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := sessions.UserID(c.Request.Context())
		if !ok {
			logger.Warn("Unauthenticated request to protected route")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized: login required",
			})
			return
		}

		c.Set(string(userIDKey), userID)
		c.Next()
	}
}
