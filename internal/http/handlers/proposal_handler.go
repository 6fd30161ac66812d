package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/granada-backend/internal/dto"
	"github.com/ignatzorin/granada-backend/internal/http/handlers/common"
	"github.com/ignatzorin/granada-backend/internal/usecase/proposal"
)

// ProposalHandler генерирует заявки и отдаёт список заявок пользователя.
type ProposalHandler struct {
	generate *proposal.GenerateProposalUseCase
	listMine *proposal.ListMyProposalsUseCase
}

func NewProposalHandler(generate *proposal.GenerateProposalUseCase, listMine *proposal.ListMyProposalsUseCase) *ProposalHandler {
	return &ProposalHandler{generate: generate, listMine: listMine}
}

// Generate обрабатывает POST /proposal.
func (h *ProposalHandler) Generate(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c)
		return
	}

	var req dto.ProposalRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondAppError(c, err)
		return
	}

	p, err := h.generate.Execute(c.Request.Context(), proposal.GenerateProposalInput{
		OwnerID:    userID,
		Topic:      req.Topic,
		Objectives: req.Objectives,
		SDGs:       req.SDGs,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProposalResponse(p))
}

// ListMine обрабатывает GET /proposals/my.
func (h *ProposalHandler) ListMine(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c)
		return
	}

	proposals, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	resp := make([]dto.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		resp = append(resp, dto.NewProposalResponse(&proposals[i]))
	}
	c.JSON(http.StatusOK, resp)
}
