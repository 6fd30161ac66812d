package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/granada-backend/internal/domain/valueobject"
	"github.com/ignatzorin/granada-backend/internal/http/handlers/common"
	"github.com/ignatzorin/granada-backend/internal/pkg/apperror"
	"github.com/ignatzorin/granada-backend/internal/usecase/export"
)

// ExportHandler отдаёт заявку файлом PDF или DOCX.
type ExportHandler struct {
	export *export.ExportProposalUseCase
}

func NewExportHandler(uc *export.ExportProposalUseCase) *ExportHandler {
	return &ExportHandler{export: uc}
}

// Export обрабатывает GET /export/:proposal_id?format=pdf|docx.
// Без format отдаётся PDF, любое другое значение даёт DOCX.
func (h *ExportHandler) Export(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c)
		return
	}

	proposalID, err := common.ParseIDParam(c, "proposal_id")
	if err != nil {
		common.RespondAppError(c, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error()))
		return
	}

	result, err := h.export.Execute(c.Request.Context(), export.ExportInput{
		ProposalID:  proposalID,
		RequesterID: userID,
		Format:      valueobject.ParseExportFormat(c.DefaultQuery("format", "pdf")),
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.MediaType, result.Data)
}
