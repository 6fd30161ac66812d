package export_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/granada-backend/internal/domain/valueobject"
	"github.com/ignatzorin/granada-backend/internal/infrastructure/render"
	"github.com/ignatzorin/granada-backend/internal/models"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
	storage "github.com/ignatzorin/granada-backend/internal/repository"
	"github.com/ignatzorin/granada-backend/internal/usecase/export"
)

type mockProposalRepository struct {
	proposals map[int64]*models.Proposal
	findErr   error
}

func (m *mockProposalRepository) Create(ctx context.Context, p *models.Proposal) error {
	m.proposals[p.ID] = p
	return nil
}

func (m *mockProposalRepository) FindByID(ctx context.Context, id int64) (*models.Proposal, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if p, ok := m.proposals[id]; ok {
		return p, nil
	}
	return nil, storage.ErrProposalNotFound
}

func (m *mockProposalRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Proposal, error) {
	return nil, nil
}

type stubRenderer struct {
	data  []byte
	err   error
	delay time.Duration
	got   string
}

func (s *stubRenderer) Render(ctx context.Context, text string) ([]byte, error) {
	s.got = text
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.data, s.err
}

func (s *stubRenderer) MediaType() string { return "application/pdf" }
func (s *stubRenderer) Extension() string { return "pdf" }

func newRepo() *mockProposalRepository {
	return &mockProposalRepository{proposals: map[int64]*models.Proposal{
		1: {ID: 1, OwnerID: 10, Topic: "Clean Water", Content: "Line1\nLine2"},
	}}
}

func newUseCase(repo *mockProposalRepository) *export.ExportProposalUseCase {
	return export.NewExportProposalUseCase(repo, render.NewPDFRenderer(), render.NewDOCXRenderer(), 5*time.Second)
}

func TestExport_PDF(t *testing.T) {
	result, err := newUseCase(newRepo()).Execute(context.Background(), export.ExportInput{
		ProposalID:  1,
		RequesterID: 10,
		Format:      valueobject.ExportFormatPDF,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Data)
	assert.Equal(t, "application/pdf", result.MediaType)
	assert.Equal(t, "proposal.pdf", result.Filename)
}

func TestExport_DOCXForOtherFormats(t *testing.T) {
	result, err := newUseCase(newRepo()).Execute(context.Background(), export.ExportInput{
		ProposalID:  1,
		RequesterID: 10,
		Format:      valueobject.ParseExportFormat("odt"),
	})
	require.NoError(t, err)

	assert.Equal(t, render.MediaTypeDOCX, result.MediaType)
	assert.Equal(t, "proposal.docx", result.Filename)
}

func TestExport_PDFText(t *testing.T) {
	repo := newRepo()
	repo.proposals[2] = &models.Proposal{ID: 2, OwnerID: 10, Topic: "Вода", Content: "Проект: Чистая вода"}
	repo.proposals[3] = &models.Proposal{ID: 3, OwnerID: 10, Topic: "水", Content: "清洁水"}
	uc := newUseCase(repo)

	result, err := uc.Execute(context.Background(), export.ExportInput{ProposalID: 2, RequesterID: 10, Format: valueobject.ExportFormatPDF})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.MediaType)

	_, err = uc.Execute(context.Background(), export.ExportInput{ProposalID: 3, RequesterID: 10, Format: valueobject.ExportFormatPDF})
	assert.True(t, apperror.IsExportFailed(err))
	assert.ErrorIs(t, err, render.ErrUnsupportedRune)

	result, err = uc.Execute(context.Background(), export.ExportInput{ProposalID: 3, RequesterID: 10, Format: valueobject.ExportFormatDOCX})
	require.NoError(t, err)
	assert.Equal(t, render.MediaTypeDOCX, result.MediaType)
}

func TestExport_UnknownProposal(t *testing.T) {
	_, err := newUseCase(newRepo()).Execute(context.Background(), export.ExportInput{ProposalID: 99, RequesterID: 10})

	assert.ErrorIs(t, err, apperror.ErrProposalNotFound)
	assert.True(t, apperror.IsNotFound(err))
}

func TestExport_ForeignProposalLooksMissing(t *testing.T) {
	_, err := newUseCase(newRepo()).Execute(context.Background(), export.ExportInput{ProposalID: 1, RequesterID: 11})

	assert.ErrorIs(t, err, apperror.ErrProposalNotFound)
}

func TestExport_StoreError(t *testing.T) {
	repo := newRepo()
	repo.findErr = errors.New("db down")

	_, err := newUseCase(repo).Execute(context.Background(), export.ExportInput{ProposalID: 1, RequesterID: 10})
	assert.Equal(t, apperror.ErrCodeDatabaseError, apperror.CodeOf(err))
}

func TestExport_RendererError(t *testing.T) {
	renderer := &stubRenderer{err: errors.New("font missing")}
	uc := export.NewExportProposalUseCase(newRepo(), renderer, renderer, time.Second)

	_, err := uc.Execute(context.Background(), export.ExportInput{ProposalID: 1, RequesterID: 10, Format: valueobject.ExportFormatPDF})
	assert.True(t, apperror.IsExportFailed(err))
	assert.Equal(t, "Line1\nLine2", renderer.got)
}

func TestExport_PayloadSignatureMismatch(t *testing.T) {
	renderer := &stubRenderer{data: []byte("definitely not a pdf")}
	uc := export.NewExportProposalUseCase(newRepo(), renderer, renderer, time.Second)

	_, err := uc.Execute(context.Background(), export.ExportInput{ProposalID: 1, RequesterID: 10, Format: valueobject.ExportFormatPDF})
	assert.True(t, apperror.IsExportFailed(err))
}

func TestExport_Timeout(t *testing.T) {
	renderer := &stubRenderer{data: []byte("%PDF-1.3"), delay: time.Second}
	uc := export.NewExportProposalUseCase(newRepo(), renderer, renderer, 10*time.Millisecond)

	_, err := uc.Execute(context.Background(), export.ExportInput{ProposalID: 1, RequesterID: 10, Format: valueobject.ExportFormatPDF})
	assert.True(t, apperror.IsExportFailed(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
