package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/granada-backend/internal/models"
)

func TestPlanningService_Logframe(t *testing.T) {
	rows := NewPlanningService().Logframe("Install wells, Train staff")

	require.Len(t, rows, 2)
	assert.Equal(t, "Install wells", rows[0].Objective)
	assert.Equal(t, models.LogframeRow{
		Objective: "Train staff",
		Output:    "Output of Train staff",
		Outcome:   "Outcome of Train staff",
	}, rows[1])
}

func TestPlanningService_LogframeSkipsEmptyFragments(t *testing.T) {
	svc := NewPlanningService()

	assert.Len(t, svc.Logframe("a,, b ,"), 2)
	assert.Empty(t, svc.Logframe(""))
	assert.NotNil(t, svc.Logframe(" , "))
}

func TestPlanningService_Budget(t *testing.T) {
	items, total := NewPlanningService().Budget()

	require.Len(t, items, 3)
	assert.Equal(t, "Personnel", items[0].Item)
	assert.Equal(t, int64(17000), total)

	again, _ := NewPlanningService().Budget()
	assert.Equal(t, items, again)
}
