package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/repository/common"
)

var (
	// ErrUserNotFound возвращается, когда запись пользователя не найдена.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken и ErrEmailTaken оборачивают common.ErrAlreadyExists.
	ErrUsernameTaken = fmt.Errorf("username: %w", common.ErrAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("email: %w", common.ErrAlreadyExists)
)

var usersTable = common.Table{
	Name:     "users",
	Columns:  "id, username, email, password_hash",
	NotFound: ErrUserNotFound,
}

// UserRepository отвечает за работу с таблицей users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт экземпляр репозитория.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create вставляет пользователя. Уникальность username и email гарантирует база:
// из двух одновременных регистраций одна получит ErrUsernameTaken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := r.db.Rebind(`
		INSERT INTO users (username, email, password_hash)
		VALUES (?, ?, ?)
		RETURNING id
	`)

	if err := r.db.QueryRowxContext(ctx, query, user.Username, user.Email, user.PasswordHash).Scan(&user.ID); err != nil {
		if common.IsUniqueViolation(err) {
			if strings.Contains(common.UniqueConstraint(err), "email") {
				return ErrEmailTaken
			}
			return ErrUsernameTaken
		}
		return fmt.Errorf("user repository: create %w", err)
	}

	return nil
}

// GetByUsername возвращает пользователя по имени.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return common.FindOne[models.User](ctx, r.db, usersTable, "username", username)
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return common.FindOne[models.User](ctx, r.db, usersTable, "id", id)
}
