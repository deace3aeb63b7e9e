package http

import (
	"net/http"
	"strings"

	"github.com/ByeoliKim/star-shop/internal/pkg/jwt"
	"github.com/ByeoliKim/star-shop/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authHeaderName   = "Authorization"
	userIDContextKey = "userId"
)

// NewAuthMiddleware extracts the acting user's identity from a Bearer token.
// Verification only: issuing tokens is the auth collaborator's job.
func NewAuthMiddleware(secret string, parser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "invalid auth header"})
			return
		}

		claims, err := parser.ParseToken([]byte(secret), parts[1])
		if err != nil {
			logger.Warn("rejected token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "invalid token"})
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Next()
	}
}

func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDContextKey)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	return userID, ok
}
