package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
)

// IDValidator проверяет, что параметр с указанным именем - положительное целое.
// Использование: router.GET("/export/:proposal_id", IDValidator("proposal_id"), handler.Export)
func IDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
		if err != nil || id <= 0 {
			_ = c.Error(apperror.New(apperror.ErrCodeValidation, "параметр "+paramName+" должен быть положительным целым числом"))
			c.Abort()
			return
		}

		c.Next()
	}
}
