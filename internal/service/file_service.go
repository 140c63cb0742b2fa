package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bulletin-board-api/internal/domain"
	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/metrics"
	"bulletin-board-api/internal/repository"
	"bulletin-board-api/internal/response"
	"bulletin-board-api/internal/storage"
)

// maxNameAttempts bounds the suffixed names tried when a stored name is taken
const maxNameAttempts = 5

// UploadedFile is one part of a multipart upload. Open may be called more than once.
type UploadedFile struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// FileService defines the interface for file attachment logic
type FileService interface {
	UploadFiles(ctx context.Context, boardID uint, files []UploadedFile) ([]dto.FileResponse, error)
	OpenFile(ctx context.Context, filename string) (io.ReadCloser, storage.ObjectInfo, error)
	DeleteFile(ctx context.Context, boardID, fileID uint) error
}

// fileServiceImpl is the implementation of FileService
type fileServiceImpl struct {
	transactor  repository.Transactor
	storage     storage.FileStorage
	maxFileSize int64
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewFileService creates a new instance of FileService. maxFileSize <= 0 disables the size limit.
func NewFileService(
	transactor repository.Transactor,
	fileStorage storage.FileStorage,
	maxFileSize int64,
	m *metrics.Metrics,
	logger *zap.Logger,
) FileService {
	return &fileServiceImpl{
		transactor:  transactor,
		storage:     fileStorage,
		maxFileSize: maxFileSize,
		metrics:     m,
		logger:      logger,
	}
}

// UploadFiles stores every named file and records them on the board in one transaction.
// If anything fails, every file stored by this call is removed again.
func (s *fileServiceImpl) UploadFiles(ctx context.Context, boardID uint, files []UploadedFile) ([]dto.FileResponse, error) {
	named := make([]UploadedFile, 0, len(files))
	for _, f := range files {
		if f.Filename == "" {
			continue
		}
		if s.maxFileSize > 0 && f.Size > s.maxFileSize {
			return nil, response.NewAppError(response.ErrCodeTooLarge,
				fmt.Sprintf("File %s exceeds the maximum size of %d bytes", f.Filename, s.maxFileSize), "")
		}
		named = append(named, f)
	}

	rows := make([]*domain.File, 0, len(named))
	saved := make([]string, 0, len(named))

	upload := func() error {
		for _, f := range named {
			name, err := s.saveUnique(ctx, f)
			if err != nil {
				return err
			}
			saved = append(saved, name)
			rows = append(rows, &domain.File{
				OriginFileName: storage.StoredName(f.Filename),
				FilePath:       domain.FilePathFor(name),
				BoardID:        boardID,
			})
		}

		return s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
			exists, err := repos.Boards.Exists(ctx, boardID)
			if err != nil {
				return err
			}
			if !exists {
				return gorm.ErrRecordNotFound
			}
			return repos.Files.CreateBatch(ctx, rows)
		})
	}

	if err := upload(); err != nil {
		s.discard(saved)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(msgBoardNotFound, "")
		}
		return nil, response.NewInternalError("Error uploading files", err)
	}

	if s.metrics != nil {
		s.metrics.AddFilesUploaded(len(rows))
	}

	s.logger.Info("Files uploaded",
		zap.Uint("board_id", boardID),
		zap.Int("file_count", len(rows)),
	)
	return dto.NewFileResponses(rows), nil
}

// saveUnique writes f under its sanitized name, adding a random suffix when the name is taken
func (s *fileServiceImpl) saveUnique(ctx context.Context, f UploadedFile) (string, error) {
	base := storage.StoredName(f.Filename)
	name := base

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		if attempt > 0 {
			name = storage.WithSuffix(base)
		}

		r, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open upload %q: %w", f.Filename, err)
		}
		err = s.storage.Save(ctx, name, r)
		r.Close()

		if err == nil {
			return name, nil
		}
		if !errors.Is(err, storage.ErrExists) {
			return "", fmt.Errorf("failed to store %q: %w", name, err)
		}
	}

	return "", fmt.Errorf("no free stored name for %q after %d attempts", f.Filename, maxNameAttempts)
}

// discard removes files stored by a failed batch. It ignores ctx so a canceled
// request still cleans up.
func (s *fileServiceImpl) discard(names []string) {
	ctx := context.Background()
	for _, name := range names {
		if err := s.storage.Delete(ctx, name); err != nil && !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("Failed to remove file from failed upload",
				zap.String("stored_name", name),
				zap.Error(err),
			)
		}
	}
}

// OpenFile opens a stored file by its bare name for download
func (s *fileServiceImpl) OpenFile(ctx context.Context, filename string) (io.ReadCloser, storage.ObjectInfo, error) {
	if err := storage.ValidateName(filename); err != nil {
		return nil, storage.ObjectInfo{}, response.NewValidationError("Invalid file name", err.Error())
	}

	rc, info, err := s.storage.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ObjectInfo{}, response.NewNotFoundError("File not found", "")
		}
		return nil, storage.ObjectInfo{}, response.NewInternalError("Failed to open file", err)
	}
	return rc, info, nil
}

// DeleteFile removes a file row of the board, then its stored bytes
func (s *fileServiceImpl) DeleteFile(ctx context.Context, boardID, fileID uint) error {
	var file *domain.File
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		var err error
		file, err = repos.Files.FindByIDAndBoardID(ctx, fileID, boardID)
		if err != nil {
			return err
		}
		return repos.Files.Delete(ctx, file.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("파일을 찾을 수 없습니다.", "")
		}
		return response.NewInternalError("파일 삭제 중 오류 발생", err)
	}

	removeStoredFiles(ctx, s.storage, s.logger, []*domain.File{file})
	return nil
}
