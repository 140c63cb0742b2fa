package dto

import (
	"time"

	"bulletin-board-api/internal/domain"
)

// RegisterRequest represents the request to register a new member
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Username string `json:"username" binding:"required,max=100" example:"alice"`
	Password string `json:"password" binding:"required" example:"p@ssw0rd"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"p@ssw0rd"`
}

// VerifyPasswordRequest represents the request to check a member's password
type VerifyPasswordRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"p@ssw0rd"`
}

// UpdateUsernameRequest represents the request to rename a member
type UpdateUsernameRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Username string `json:"username" binding:"required,max=100" example:"alice2"`
}

// DeleteMemberRequest represents the withdrawal request
type DeleteMemberRequest struct {
	Email string `json:"email" binding:"required" example:"user@example.com"`
}

// MemberResponse is a member without credentials
type MemberResponse struct {
	ID           uint        `json:"id" example:"1"`
	Email        string      `json:"email" example:"user@example.com"`
	Username     string      `json:"username" example:"alice"`
	Role         domain.Role `json:"role" example:"USER"`
	CreatedDate  time.Time   `json:"createdDate"`
	ModifiedDate time.Time   `json:"modifiedDate"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Message string         `json:"message" example:"Login successful"`
	User    MemberResponse `json:"user"`
}

// NewMemberResponse converts a member into its public form
func NewMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		Role:         m.Role,
		CreatedDate:  m.CreatedDate,
		ModifiedDate: m.ModifiedDate,
	}
}
