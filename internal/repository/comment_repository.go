package repository

import (
	"context"

	"gorm.io/gorm"

	"bulletin-board-api/internal/domain"
	"bulletin-board-api/internal/dto"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByIDAndBoardID(ctx context.Context, commentID, boardID uint) (*domain.Comment, error)
	ListByBoardID(ctx context.Context, boardID uint, page dto.PageRequest) ([]dto.CommentResponse, int64, error)
	UpdateContent(ctx context.Context, commentID uint, content string) error
	Delete(ctx context.Context, commentID uint) error
	DeleteByUserID(ctx context.Context, userID uint) (int64, error)
	DeleteByBoardID(ctx context.Context, boardID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create inserts a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByIDAndBoardID finds a comment only if it belongs to the board
func (r *commentRepositoryImpl) FindByIDAndBoardID(ctx context.Context, commentID, boardID uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).
		Where("comment_id = ? AND board_id = ?", commentID, boardID).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByBoardID returns one page of a board's comments, newest first, with the author's username
func (r *commentRepositoryImpl) ListByBoardID(ctx context.Context, boardID uint, page dto.PageRequest) ([]dto.CommentResponse, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("board_id = ?", boardID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]dto.CommentResponse, 0, page.Size)
	if page.PastEnd(total) {
		return comments, total, nil
	}
	if err := r.db.WithContext(ctx).
		Table("comments c").
		Select("c.comment_id AS id, c.content, c.created_date, c.modified_date, m.username AS writer").
		Joins("LEFT JOIN members m ON c.user_id = m.id").
		Where("c.board_id = ?", boardID).
		Order("c.created_date DESC, c.comment_id DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Scan(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// UpdateContent overwrites content and modified_date
func (r *commentRepositoryImpl) UpdateContent(ctx context.Context, commentID uint, content string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("comment_id = ?", commentID).
		Updates(map[string]interface{}{
			"content":       content,
			"modified_date": r.db.NowFunc(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a comment row
func (r *commentRepositoryImpl) Delete(ctx context.Context, commentID uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Comment{}, commentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByUserID removes every comment written by the member
func (r *commentRepositoryImpl) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Comment{})
	return result.RowsAffected, result.Error
}

// DeleteByBoardID removes every comment on the board
func (r *commentRepositoryImpl) DeleteByBoardID(ctx context.Context, boardID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("board_id = ?", boardID).Delete(&domain.Comment{})
	return result.RowsAffected, result.Error
}

// Count returns the number of comments
func (r *commentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Comment{}).Count(&count).Error
	return count, err
}
