package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/granada-backend/internal/dto"
	"github.com/ignatzorin/granada-backend/internal/http/handlers/common"
	"github.com/ignatzorin/granada-backend/internal/service"
	"github.com/ignatzorin/granada-backend/internal/usecase/matching"
)

// DonorCallHandler - конкурсы доноров и подбор конкурсов под заявку.
type DonorCallHandler struct {
	calls *service.DonorCallService
	match *matching.MatchDonorsUseCase
}

func NewDonorCallHandler(calls *service.DonorCallService, match *matching.MatchDonorsUseCase) *DonorCallHandler {
	return &DonorCallHandler{calls: calls, match: match}
}

// Create обрабатывает POST /donor_calls.
func (h *DonorCallHandler) Create(c *gin.Context) {
	var req dto.CreateDonorCallRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondAppError(c, err)
		return
	}

	call, err := h.calls.Create(c.Request.Context(), service.DonorCallInput{
		Title:       req.Title,
		Description: req.Description,
		SDGTags:     req.SDGTags,
		Keywords:    req.Keywords,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, call)
}

// List обрабатывает GET /donor_calls.
func (h *DonorCallHandler) List(c *gin.Context) {
	calls, err := h.calls.List(c.Request.Context())
	if err != nil {
		common.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, calls)
}

// Match обрабатывает POST /match_donors.
func (h *DonorCallHandler) Match(c *gin.Context) {
	var req dto.ProposalRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondAppError(c, err)
		return
	}

	matches, err := h.match.Execute(c.Request.Context(), matching.MatchDonorsInput{
		Topic:      req.Topic,
		Objectives: req.Objectives,
		SDGs:       req.SDGs,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MatchResponse{Matches: matches})
}
