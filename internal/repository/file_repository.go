package repository

import (
	"context"

	"gorm.io/gorm"

	"bulletin-board-api/internal/domain"
)

// FileRepository defines the interface for file metadata access
type FileRepository interface {
	CreateBatch(ctx context.Context, files []*domain.File) error
	FindByBoardID(ctx context.Context, boardID uint) ([]*domain.File, error)
	FindByIDAndBoardID(ctx context.Context, fileID, boardID uint) (*domain.File, error)
	Delete(ctx context.Context, fileID uint) error
	DeleteByBoardID(ctx context.Context, boardID uint) (int64, error)
	ListFilePaths(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// fileRepositoryImpl is the GORM implementation of FileRepository
type fileRepositoryImpl struct {
	db *gorm.DB
}

// NewFileRepository creates a new instance of FileRepository
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepositoryImpl{db: db}
}

// CreateBatch inserts file rows in one statement
func (r *fileRepositoryImpl) CreateBatch(ctx context.Context, files []*domain.File) error {
	if len(files) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&files).Error
}

// FindByBoardID returns a board's files in upload order
func (r *fileRepositoryImpl) FindByBoardID(ctx context.Context, boardID uint) ([]*domain.File, error) {
	var files []*domain.File
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("file_id ASC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// FindByIDAndBoardID finds a file only if it belongs to the board
func (r *fileRepositoryImpl) FindByIDAndBoardID(ctx context.Context, fileID, boardID uint) (*domain.File, error) {
	var file domain.File
	if err := r.db.WithContext(ctx).
		Where("file_id = ? AND board_id = ?", fileID, boardID).
		First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// Delete removes a file row
func (r *fileRepositoryImpl) Delete(ctx context.Context, fileID uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.File{}, fileID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByBoardID removes every file row of a board
func (r *fileRepositoryImpl) DeleteByBoardID(ctx context.Context, boardID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("board_id = ?", boardID).Delete(&domain.File{})
	return result.RowsAffected, result.Error
}

// ListFilePaths returns every referenced file_path
func (r *fileRepositoryImpl) ListFilePaths(ctx context.Context) ([]string, error) {
	var paths []string
	if err := r.db.WithContext(ctx).
		Model(&domain.File{}).
		Pluck("file_path", &paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

// Count returns the number of file rows
func (r *fileRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.File{}).Count(&count).Error
	return count, err
}
