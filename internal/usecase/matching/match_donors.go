package matching

import (
	"context"

	"github.com/ignatzorin/granada-backend/internal/domain/repository"
	"github.com/ignatzorin/granada-backend/internal/domain/valueobject"
	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
	"github.com/ignatzorin/granada-backend/internal/validation"
)

// Match возвращает конкурсы, у которых есть хотя бы один общий SDG тег с candidate,
// в порядке calls. Ранжирования нет. Пустой candidate или конкурс без тегов не совпадают.
func Match(candidate valueobject.TagSet, calls []models.DonorCall) []models.DonorMatch {
	matches := []models.DonorMatch{}
	if candidate.IsEmpty() {
		return matches
	}

	for _, call := range calls {
		if !candidate.Intersects(valueobject.NewTagSet(call.SDGTags)) {
			continue
		}
		matches = append(matches, models.DonorMatch{ID: call.ID, Title: call.Title})
	}

	return matches
}

// MatchDonorsInput - тело запроса /match_donors.
type MatchDonorsInput struct {
	Topic      string
	Objectives string
	SDGs       []string
}

// MatchDonorsUseCase сопоставляет заявку с сохранёнными конкурсами.
type MatchDonorsUseCase struct {
	donorCallRepo repository.DonorCallRepository
}

func NewMatchDonorsUseCase(donorCallRepo repository.DonorCallRepository) *MatchDonorsUseCase {
	return &MatchDonorsUseCase{donorCallRepo: donorCallRepo}
}

// Execute сопоставляет SDG теги заявки со всеми сохранёнными конкурсами.
// Тема и цели в сопоставлении не участвуют.
func (uc *MatchDonorsUseCase) Execute(ctx context.Context, input MatchDonorsInput) ([]models.DonorMatch, error) {
	candidate := valueobject.NewTagSet(input.SDGs)
	if err := validation.ValidateTags("sdgs", candidate.Values(), validation.MaxSDGTags); err != nil {
		return nil, apperror.Validation(err)
	}

	calls, err := uc.donorCallRepo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить конкурсы")
	}

	return Match(candidate, calls), nil
}
