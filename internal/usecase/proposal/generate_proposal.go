package proposal

import (
	"context"
	"errors"

	"github.com/ignatzorin/granada-backend/internal/domain/repository"
	"github.com/ignatzorin/granada-backend/internal/domain/valueobject"
	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
	storage "github.com/ignatzorin/granada-backend/internal/repository"
	"github.com/ignatzorin/granada-backend/internal/validation"
)

// GenerateProposalInput - данные для новой заявки.
type GenerateProposalInput struct {
	OwnerID    int64
	Topic      string
	Objectives string
	SDGs       []string
}

// GenerateProposalUseCase создаёт заявку с текстом по шаблону.
type GenerateProposalUseCase struct {
	proposalRepo repository.ProposalRepository
	userRepo     repository.UserRepository
}

func NewGenerateProposalUseCase(proposalRepo repository.ProposalRepository, userRepo repository.UserRepository) *GenerateProposalUseCase {
	return &GenerateProposalUseCase{
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
	}
}

// Execute проверяет ввод и владельца, затем сохраняет заявку.
func (uc *GenerateProposalUseCase) Execute(ctx context.Context, input GenerateProposalInput) (*models.Proposal, error) {
	topic := validation.SanitizeText(input.Topic)
	objectives := validation.SanitizeText(input.Objectives)

	if err := validation.ValidateTopic(topic); err != nil {
		return nil, apperror.Validation(err)
	}
	if err := validation.ValidateObjectives(objectives); err != nil {
		return nil, apperror.Validation(err)
	}
	if err := validation.ValidateTags("sdgs", valueobject.NewTagSet(input.SDGs).Values(), validation.MaxSDGTags); err != nil {
		return nil, apperror.Validation(err)
	}

	// Владелец должен существовать: токен мог пережить пользователя в другой базе.
	if _, err := uc.userRepo.GetByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить владельца")
	}

	// В текст попадают теги в том виде, в каком их прислал пользователь.
	sdgs := valueobject.DistinctTrimmed(input.SDGs)

	proposal := &models.Proposal{
		OwnerID: input.OwnerID,
		Topic:   topic,
		Content: BuildContent(topic, objectives, sdgs),
	}

	if err := uc.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить заявку")
	}

	return proposal, nil
}
