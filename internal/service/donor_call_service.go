package service

import (
	"context"

	"github.com/ignatzorin/granada-backend/internal/domain/repository"
	"github.com/ignatzorin/granada-backend/internal/domain/valueobject"
	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
	"github.com/ignatzorin/granada-backend/internal/validation"
)

// DonorCallInput - поля нового конкурса до очистки.
type DonorCallInput struct {
	Title       string
	Description string
	SDGTags     []string
	Keywords    []string
}

// DonorCallService создаёт и перечисляет грантовые конкурсы.
type DonorCallService struct {
	repo repository.DonorCallRepository
}

func NewDonorCallService(r repository.DonorCallRepository) *DonorCallService {
	return &DonorCallService{repo: r}
}

// Create сохраняет конкурс. Теги нормализуются так же, как при сопоставлении,
// иначе совпадения будут теряться. Ключевые слова хранятся как переданы.
func (s *DonorCallService) Create(ctx context.Context, in DonorCallInput) (*models.DonorCall, error) {
	title := validation.SanitizeText(in.Title)
	description := validation.SanitizeText(in.Description)

	if err := validation.ValidateTitle(title); err != nil {
		return nil, apperror.Validation(err)
	}
	if err := validation.ValidateDescription(description); err != nil {
		return nil, apperror.Validation(err)
	}

	tags := valueobject.NewTagSet(in.SDGTags)
	keywords := valueobject.DistinctTrimmed(in.Keywords)

	if err := validation.ValidateTags("sdg_tags", tags.Values(), validation.MaxSDGTags); err != nil {
		return nil, apperror.Validation(err)
	}
	if err := validation.ValidateTags("keywords", keywords, validation.MaxKeywords); err != nil {
		return nil, apperror.Validation(err)
	}

	call := &models.DonorCall{
		Title:       title,
		Description: description,
		SDGTags:     tags.Values(),
		Keywords:    keywords,
	}

	if err := s.repo.Create(ctx, call); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить конкурс")
	}

	return call, nil
}

func (s *DonorCallService) List(ctx context.Context) ([]models.DonorCall, error) {
	calls, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить конкурсы")
	}
	return calls, nil
}
