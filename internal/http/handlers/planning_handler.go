package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/granada-backend/internal/dto"
	"github.com/ignatzorin/granada-backend/internal/http/handlers/common"
	"github.com/ignatzorin/granada-backend/internal/service"
)

// PlanningHandler обслуживает /logframe и /budget.
type PlanningHandler struct {
	planning *service.PlanningService
}

func NewPlanningHandler(planning *service.PlanningService) *PlanningHandler {
	return &PlanningHandler{planning: planning}
}

// Logframe обрабатывает POST /logframe.
func (h *PlanningHandler) Logframe(c *gin.Context) {
	var req dto.ProposalRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LogframeResponse{Logframe: h.planning.Logframe(req.Objectives)})
}

// Budget обрабатывает POST /budget. Тело запроса игнорируется.
func (h *PlanningHandler) Budget(c *gin.Context) {
	items, total := h.planning.Budget()
	c.JSON(http.StatusOK, dto.BudgetResponse{Budget: items, Total: total})
}
