package common

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/granada-backend/internal/dto"
	"github.com/ignatzorin/granada-backend/internal/http/middleware"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
)

var (
	// ErrUserNotFound is returned when user is not found in context
	ErrUserNotFound = errors.New("пользователь не найден в контексте")

	// ErrInvalidID is returned when an id parameter is not a positive integer
	ErrInvalidID = errors.New("неверный формат идентификатора")
)

// CurrentUserID extracts user ID from Gin context
func CurrentUserID(c *gin.Context) (int64, error) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, ErrUserNotFound
	}

	userID, ok := raw.(int64)
	if !ok || userID <= 0 {
		return 0, ErrUserNotFound
	}

	return userID, nil
}

// ParseIDParam parses a positive int64 from URL parameter
func ParseIDParam(c *gin.Context, paramName string) (int64, error) {
	param := c.Param(paramName)
	if param == "" {
		return 0, fmt.Errorf("параметр %s отсутствует", paramName)
	}

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}

// BindJSON binds JSON request and returns a validation AppError
func BindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, "ошибка валидации запроса: "+err.Error())
	}
	return nil
}

// Bind binds JSON or form body depending on Content-Type
func Bind(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, "ошибка валидации запроса: "+err.Error())
	}
	return nil
}

// RespondError sends a standardized error response
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// RespondAppError maps err to status and message and records it for ErrorHandler logging
func RespondAppError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, message := apperror.Resolve(err)
	RespondError(c, status, message)
}

// RespondUnauthorized sends a 401 Unauthorized response
func RespondUnauthorized(c *gin.Context) {
	RespondAppError(c, apperror.ErrUnauthorized)
}
