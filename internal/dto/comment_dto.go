package dto

import "time"

// WriteCommentRequest represents the request to create a comment.
// The author is taken from the User-ID header.
type WriteCommentRequest struct {
	Content string `json:"content" binding:"required" example:"좋은 글 감사합니다"`
}

// UpdateCommentRequest carries new content and the claimed author's email
type UpdateCommentRequest struct {
	Content   string `json:"content" binding:"required" example:"수정된 댓글"`
	UserEmail string `json:"user_email" binding:"required" example:"user@example.com"`
}

// DeleteCommentRequest carries the claimed author's email
type DeleteCommentRequest struct {
	UserEmail string `json:"user_email" binding:"required" example:"user@example.com"`
}

// CommentResponse is one comment in a list
type CommentResponse struct {
	ID           uint      `json:"id" gorm:"column:id"`
	Content      string    `json:"content" gorm:"column:content"`
	CreatedDate  time.Time `json:"createdDate" gorm:"column:created_date"`
	ModifiedDate time.Time `json:"modifiedDate" gorm:"column:modified_date"`
	Writer       *string   `json:"writer" gorm:"column:writer"`
}

// CommentListResponse is a paginated comment list
type CommentListResponse struct {
	Content       []CommentResponse `json:"content"`
	PageSize      int               `json:"pageSize"`
	TotalPages    int               `json:"totalPages"`
	TotalElements int64             `json:"totalElements"`
}
