package repository

import (
	"context"

	"github.com/ignatzorin/granada-backend/internal/models"
)

// ProposalRepository - то, что use case'ам нужно от хранилища заявок.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *models.Proposal) error
	FindByID(ctx context.Context, id int64) (*models.Proposal, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Proposal, error)
}
