package dto

import (
	"github.com/ignatzorin/granada-backend/internal/models"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterResponse is returned after successful registration
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenResponse is returned by /login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ProposalResponse represents a stored proposal
type ProposalResponse struct {
	ID      int64  `json:"id"`
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

// NewProposalResponse creates a ProposalResponse from the model
func NewProposalResponse(p *models.Proposal) ProposalResponse {
	return ProposalResponse{ID: p.ID, Topic: p.Topic, Content: p.Content}
}

// MatchResponse lists donor calls sharing an SDG tag with the proposal
type MatchResponse struct {
	Matches []models.DonorMatch `json:"matches"`
}

// LogframeResponse wraps logframe rows
type LogframeResponse struct {
	Logframe []models.LogframeRow `json:"logframe"`
}

// BudgetResponse is the sample budget table
type BudgetResponse struct {
	Budget []models.BudgetItem `json:"budget"`
	Total  int64               `json:"total"`
}
