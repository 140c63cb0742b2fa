package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bulletin-board-api/internal/domain"
	"bulletin-board-api/internal/dto"
)

// BoardDetail is a board joined with its writer. Writer fields are nil when the
// board has no member.
type BoardDetail struct {
	ID           uint      `gorm:"column:id"`
	Title        string    `gorm:"column:title"`
	Content      string    `gorm:"column:content"`
	ViewCount    int64     `gorm:"column:view_count"`
	CreatedDate  time.Time `gorm:"column:created_date"`
	ModifiedDate time.Time `gorm:"column:modified_date"`
	WriterEmail  *string   `gorm:"column:writer_email"`
	WriterName   *string   `gorm:"column:writer_name"`
}

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uint) (*domain.Board, error)
	FindDetail(ctx context.Context, id uint) (*BoardDetail, error)
	List(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) ([]dto.BoardListItem, int64, error)
	Update(ctx context.Context, id uint, title, content string) (int64, error)
	IncrementViewCount(ctx context.Context, id uint) (int64, error)
	DetachMember(ctx context.Context, memberID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create inserts a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindByID finds a board by its ID
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindDetail loads a board with its writer's email and username
func (r *boardRepositoryImpl) FindDetail(ctx context.Context, id uint) (*BoardDetail, error) {
	var detail BoardDetail
	err := r.db.WithContext(ctx).
		Table("boards b").
		Select("b.board_id AS id, b.title, b.content, b.view_count, b.created_date, b.modified_date, " +
			"m.email AS writer_email, m.username AS writer_name").
		Joins("LEFT JOIN members m ON b.member_id = m.id").
		Where("b.board_id = ?", id).
		Take(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// filtered builds a fresh list query, applying the search filter when active
func (r *boardRepositoryImpl) filtered(ctx context.Context, search dto.BoardSearch) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table("boards b").
		Joins("LEFT JOIN members m ON b.member_id = m.id")

	if !search.Active() {
		return query
	}

	pattern := "%" + search.Keyword + "%"
	switch search.Option {
	case dto.SearchOptionTitle:
		query = query.Where("b.title LIKE ?", pattern)
	case dto.SearchOptionContent:
		query = query.Where("b.content LIKE ?", pattern)
	case dto.SearchOptionWriter:
		query = query.Where("m.username LIKE ?", pattern)
	}
	return query
}

// List returns one page of boards, newest first, and the filtered total
func (r *boardRepositoryImpl) List(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) ([]dto.BoardListItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Table("(?) AS filtered", r.filtered(ctx, search).Select("b.board_id")).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]dto.BoardListItem, 0, page.Size)
	if page.PastEnd(total) {
		return items, total, nil
	}
	if err := r.filtered(ctx, search).
		Select("b.board_id AS id, b.title, b.content, b.view_count, b.created_date, m.username AS writer").
		Order("b.created_date DESC, b.board_id DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Scan(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update overwrites title and content, returning the number of rows matched
func (r *boardRepositoryImpl) Update(ctx context.Context, id uint, title, content string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("board_id = ?", id).
		Updates(map[string]interface{}{
			"title":         title,
			"content":       content,
			"modified_date": r.db.NowFunc(),
		})
	return result.RowsAffected, result.Error
}

// IncrementViewCount adds one to view_count in a single statement
func (r *boardRepositoryImpl) IncrementViewCount(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("board_id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	return result.RowsAffected, result.Error
}

// DetachMember clears member_id on every board written by the member
func (r *boardRepositoryImpl) DetachMember(ctx context.Context, memberID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("member_id = ?", memberID).
		UpdateColumn("member_id", nil)
	return result.RowsAffected, result.Error
}

// Delete removes a board row
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Board{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether a board with the ID exists
func (r *boardRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("board_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of boards
func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Board{}).Count(&count).Error
	return count, err
}
