package repository

import (
	"context"

	"github.com/ignatzorin/granada-backend/internal/models"
)

// UserRepository - чтение пользователей, нужное use case'ам.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
