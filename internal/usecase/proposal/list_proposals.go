package proposal

import (
	"context"

	"github.com/ignatzorin/granada-backend/internal/domain/repository"
	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
)

// ListMyProposalsUseCase возвращает заявки текущего пользователя.
type ListMyProposalsUseCase struct {
	proposalRepo repository.ProposalRepository
}

func NewListMyProposalsUseCase(proposalRepo repository.ProposalRepository) *ListMyProposalsUseCase {
	return &ListMyProposalsUseCase{proposalRepo: proposalRepo}
}

func (uc *ListMyProposalsUseCase) Execute(ctx context.Context, ownerID int64) ([]models.Proposal, error) {
	proposals, err := uc.proposalRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить заявки")
	}
	return proposals, nil
}
