package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alt-7/task-management/internal/auth"
	"github.com/alt-7/task-management/pkg/apierrors"
)

const userIDKey = "user_id"

// RequireAuth guards mutation routes. It only extracts the numeric user
// id from a valid bearer token; issuing tokens is not this service's job.
func RequireAuth(manager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID returns the authenticated caller's id, or nil on routes the
// guard did not run on.
func GetUserID(c *gin.Context) *int64 {
	if value, exists := c.Get(userIDKey); exists {
		if id, ok := value.(int64); ok {
			return &id
		}
	}
	return nil
}
