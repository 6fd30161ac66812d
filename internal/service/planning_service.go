package service

import (
	"strings"

	"github.com/ignatzorin/granada-backend/internal/models"
)

// PlanningService строит логическую рамку и типовой бюджет. Состояния нет.
type PlanningService struct{}

func NewPlanningService() *PlanningService {
	return &PlanningService{}
}

// Logframe делит цели по запятой и строит по строке на каждую непустую цель.
func (s *PlanningService) Logframe(objectives string) []models.LogframeRow {
	rows := []models.LogframeRow{}
	for _, fragment := range strings.Split(objectives, ",") {
		objective := strings.TrimSpace(fragment)
		if objective == "" {
			continue
		}
		rows = append(rows, models.LogframeRow{
			Objective: objective,
			Output:    "Output of " + objective,
			Outcome:   "Outcome of " + objective,
		})
	}
	return rows
}

// Budget возвращает фиксированный пример бюджета и его сумму.
func (s *PlanningService) Budget() ([]models.BudgetItem, int64) {
	items := []models.BudgetItem{
		{Item: "Personnel", Amount: 10000},
		{Item: "Equipment", Amount: 5000},
		{Item: "Travel", Amount: 2000},
	}

	var total int64
	for _, item := range items {
		total += item.Amount
	}
	return items, total
}
