package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
)

// ContextUserIDKey - ключ gin.Context с идентификатором пользователя (int64).
const ContextUserIDKey = "userID"

// Authenticator проверяет bearer токен и возвращает идентификатор пользователя.
type Authenticator interface {
	Authenticate(raw string) (int64, error)
}

// AuthMiddleware проверяет JWT access токен.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperror.ErrUnauthorized.Message})
			return
		}

		userID, err := auth.Authenticate(strings.TrimSpace(raw))
		if err != nil {
			status, message := apperror.Resolve(err)
			c.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
