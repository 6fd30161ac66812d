package dto

// RegisterRequest represents the request to register a user
type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginRequest is accepted as form-encoded or JSON body
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// ProposalRequest is shared by /proposal, /match_donors and /logframe
type ProposalRequest struct {
	Topic      string   `json:"topic"`
	SDGs       []string `json:"sdgs"`
	Objectives string   `json:"objectives"`
}

// CreateDonorCallRequest represents the request to create a donor call
type CreateDonorCallRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	SDGTags     []string `json:"sdg_tags"`
	Keywords    []string `json:"keywords"`
}
