package models

// LogframeRow - строка логической рамки проекта.
type LogframeRow struct {
	Objective string `json:"objective"`
	Output    string `json:"output"`
	Outcome   string `json:"outcome"`
}

// BudgetItem - статья бюджета.
type BudgetItem struct {
	Item   string `json:"item"`
	Amount int64  `json:"amount"`
}
