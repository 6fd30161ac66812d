package repository

import (
	"context"

	"github.com/ignatzorin/granada-backend/internal/models"
)

// DonorCallRepository - хранилище грантовых конкурсов.
// List возвращает конкурсы в порядке хранения (по возрастанию id).
type DonorCallRepository interface {
	Create(ctx context.Context, call *models.DonorCall) error
	List(ctx context.Context) ([]models.DonorCall, error)
}
