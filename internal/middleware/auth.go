package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"intervue_backend/internal/auth"
	"intervue_backend/internal/config"
	"intervue_backend/internal/logger"
)

// AuthMiddleware validates the Bearer JWT and stores the user id in the
// gin context and the request context (for logging).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// CronSecretMiddleware guards internal trigger endpoints. The shared secret
// mirrors how a hosted scheduler would authenticate its invocations.
func CronSecretMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.GetConfig().Workers.CronSecret
		if secret == "" || c.GetHeader("X-Cron-Secret") != secret {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
