package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/granada-backend/internal/logger"
	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
	"github.com/ignatzorin/granada-backend/internal/repository"
	"github.com/ignatzorin/granada-backend/internal/validation"
)

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService инкапсулирует бизнес-логику регистрации и аутентификации.
type AuthService struct {
	repo         AuthRepository
	tokenManager *TokenManager
}

// RegisterInput содержит данные пользователя при регистрации.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput содержит данные для входа.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult - выданный access токен.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(repo AuthRepository, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		repo:         repo,
		tokenManager: tokenManager,
	}
}

// Register создаёт нового пользователя. Занятые username или email дают Conflict,
// в том числе если две регистрации столкнулись на уникальном индексе.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := normalizeUsername(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := validation.ValidateUsername(username); err != nil {
		return nil, apperror.Validation(err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, apperror.Validation(err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, apperror.Validation(err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось захешировать пароль")
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passHash),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, apperror.Wrap(err, apperror.ErrCodeConflict, apperror.ErrEmailTaken.Message)
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, apperror.Wrap(err, apperror.ErrCodeConflict, apperror.ErrUsernameTaken.Message)
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать пользователя")
	}

	logger.Entry(logrus.Fields{"user_id": user.ID}).Info("auth service: пользователь зарегистрирован")

	return user, nil
}

// Login проверяет учётные данные и выпускает access токен.
// Неизвестное имя и неверный пароль неразличимы для клиента.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	user, err := s.repo.GetByUsername(ctx, normalizeUsername(in.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить пользователя")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		logger.Entry(logrus.Fields{"user_id": user.ID}).Warn("auth service: неверный пароль")
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Issue(user.ID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен")
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenManager.TTL().Seconds()),
	}, nil
}

// Authenticate проверяет токен и возвращает идентификатор пользователя.
func (s *AuthService) Authenticate(raw string) (int64, error) {
	userID, err := s.tokenManager.Verify(raw)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return 0, apperror.Wrap(err, apperror.ErrCodeUnauthorized, "срок действия токена истёк")
		}
		return 0, apperror.Wrap(err, apperror.ErrCodeUnauthorized, "токен невалиден")
	}
	return userID, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
