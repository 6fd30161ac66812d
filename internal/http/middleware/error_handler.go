package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/granada-backend/internal/logger"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Если хэндлер только добавил ошибку через c.Error, ответ пишется здесь.
// Внутренние ошибки маскируются, клиент видит только сообщение AppError.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, message := apperror.Resolve(err)

		entry := logger.Entry(logrus.Fields{
			"error":  err.Error(),
			"code":   apperror.CodeOf(err),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		if status >= 500 {
			entry.Error("Request error")
		} else {
			entry.Debug("Request error")
		}

		// Ответ уже отправлен хэндлером
		if c.Writer.Written() {
			return
		}

		c.JSON(status, gin.H{"error": message})
	}
}
