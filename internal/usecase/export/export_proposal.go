package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/granada-backend/internal/domain/repository"
	"github.com/ignatzorin/granada-backend/internal/domain/valueobject"
	"github.com/ignatzorin/granada-backend/internal/logger"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
	storage "github.com/ignatzorin/granada-backend/internal/repository"
)

// Renderer превращает текст заявки в документ.
type Renderer interface {
	Render(ctx context.Context, text string) ([]byte, error)
	MediaType() string
	Extension() string
}

// ExportInput - какую заявку, в каком формате и для кого выгружать.
type ExportInput struct {
	ProposalID  int64
	RequesterID int64
	Format      valueobject.ExportFormat
}

// ExportResult - готовый файл и его заголовки.
type ExportResult struct {
	Data      []byte
	MediaType string
	Filename  string
}

// ExportProposalUseCase проверяет владельца и рендерит заявку.
type ExportProposalUseCase struct {
	proposalRepo repository.ProposalRepository
	renderers    map[valueobject.ExportFormat]Renderer
	timeout      time.Duration
}

// NewExportProposalUseCase принимает рендереры для pdf и docx.
// timeout <= 0 отключает ограничение по времени.
func NewExportProposalUseCase(proposalRepo repository.ProposalRepository, pdf, docx Renderer, timeout time.Duration) *ExportProposalUseCase {
	return &ExportProposalUseCase{
		proposalRepo: proposalRepo,
		renderers: map[valueobject.ExportFormat]Renderer{
			valueobject.ExportFormatPDF:  pdf,
			valueobject.ExportFormatDOCX: docx,
		},
		timeout: timeout,
	}
}

// Execute рендерит сохранённое содержимое заявки. Кэша нет, каждый вызов рендерит заново.
func (uc *ExportProposalUseCase) Execute(ctx context.Context, input ExportInput) (*ExportResult, error) {
	proposal, err := uc.proposalRepo.FindByID(ctx, input.ProposalID)
	if err != nil {
		if errors.Is(err, storage.ErrProposalNotFound) {
			return nil, apperror.ErrProposalNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить заявку")
	}

	// Чужая заявка выглядит как отсутствующая, чтобы не раскрывать чужие id.
	if proposal.OwnerID != input.RequesterID {
		return nil, apperror.ErrProposalNotFound
	}

	format := input.Format
	if !format.IsValid() {
		format = valueobject.ExportFormatDOCX
	}
	renderer := uc.renderers[format]

	renderCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	data, err := renderer.Render(renderCtx, proposal.Content)
	if err == nil {
		err = checkPayload(data, renderer.Extension())
	}
	if err != nil {
		logger.Entry(logrus.Fields{
			"proposal_id": proposal.ID,
			"format":      format.String(),
			"error":       err.Error(),
		}).Error("export: не удалось сформировать документ")
		return nil, apperror.Wrap(err, apperror.ErrCodeExportFailed, "не удалось сформировать документ")
	}

	return &ExportResult{
		Data:      data,
		MediaType: renderer.MediaType(),
		Filename:  "proposal." + renderer.Extension(),
	}, nil
}

// checkPayload сверяет сигнатуру документа с ожидаемым типом. DOCX - это zip контейнер.
func checkPayload(data []byte, extension string) error {
	if len(data) == 0 {
		return errors.New("пустой документ")
	}

	kind := extension
	if extension == "docx" {
		kind = "zip"
	}
	if !filetype.Is(data, kind) {
		return fmt.Errorf("сигнатура документа не соответствует %s", extension)
	}
	return nil
}
