package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bulletin-board-api/internal/domain"
	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/metrics"
	"bulletin-board-api/internal/repository"
	"bulletin-board-api/internal/response"
	"bulletin-board-api/internal/storage"
)

const msgBoardNotFound = "게시글을 찾을 수 없습니다."

// BoardService defines the interface for board business logic
type BoardService interface {
	ListBoards(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) (*dto.BoardListResponse, error)
	GetBoardDetail(ctx context.Context, boardID uint) (*dto.BoardDetailResponse, error)
	WriteBoard(ctx context.Context, req *dto.WriteBoardRequest) (*dto.WriteBoardResponse, error)
	UpdateBoard(ctx context.Context, boardID uint, req *dto.UpdateBoardRequest) (*dto.UpdateBoardResponse, error)
	DeleteBoard(ctx context.Context, boardID uint) error
	IncrementViewCount(ctx context.Context, boardID uint) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo  repository.BoardRepository
	memberRepo repository.MemberRepository
	fileRepo   repository.FileRepository
	transactor repository.Transactor
	storage    storage.FileStorage
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	memberRepo repository.MemberRepository,
	fileRepo repository.FileRepository,
	transactor repository.Transactor,
	fileStorage storage.FileStorage,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:  boardRepo,
		memberRepo: memberRepo,
		fileRepo:   fileRepo,
		transactor: transactor,
		storage:    fileStorage,
		metrics:    m,
		logger:     logger,
	}
}

// ListBoards returns one page of boards, newest first
func (s *boardServiceImpl) ListBoards(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) (*dto.BoardListResponse, error) {
	items, total, err := s.boardRepo.List(ctx, search, page)
	if err != nil {
		return nil, response.NewInternalError("Error fetching board list", err)
	}
	if items == nil {
		items = []dto.BoardListItem{}
	}

	return &dto.BoardListResponse{
		Content:       items,
		TotalElements: total,
		TotalPages:    dto.TotalPages(total, page.Size),
	}, nil
}

// GetBoardDetail returns a board with its writer and files
func (s *boardServiceImpl) GetBoardDetail(ctx context.Context, boardID uint) (*dto.BoardDetailResponse, error) {
	detail, err := s.boardRepo.FindDetail(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(msgBoardNotFound, "")
		}
		return nil, response.NewInternalError("게시글 상세 조회 중 오류 발생", err)
	}

	files, err := s.fileRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewInternalError("게시글 상세 조회 중 오류 발생", err)
	}

	return &dto.BoardDetailResponse{
		ID:           detail.ID,
		Title:        detail.Title,
		Content:      detail.Content,
		ViewCount:    detail.ViewCount,
		CreatedDate:  detail.CreatedDate,
		ModifiedDate: detail.ModifiedDate,
		WriterEmail:  detail.WriterEmail,
		WriterName:   detail.WriterName,
		Files:        dto.NewFileResponses(files),
	}, nil
}

// WriteBoard creates a board. WriterID is optional but must name an existing member.
func (s *boardServiceImpl) WriteBoard(ctx context.Context, req *dto.WriteBoardRequest) (*dto.WriteBoardResponse, error) {
	if req.WriterID.Value != nil {
		if _, err := s.memberRepo.FindByID(ctx, *req.WriterID.Value); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewValidationError("Writer not found", "")
			}
			return nil, response.NewInternalError("Failed to verify writer", err)
		}
	}

	board := &domain.Board{
		Title:    req.Title,
		Content:  req.Content,
		MemberID: req.WriterID.Value,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewInternalError("게시글 작성 중 오류 발생", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}

	return &dto.WriteBoardResponse{BoardID: board.ID}, nil
}

// UpdateBoard overwrites title and content
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, boardID uint, req *dto.UpdateBoardRequest) (*dto.UpdateBoardResponse, error) {
	rows, err := s.boardRepo.Update(ctx, boardID, req.Title, req.Content)
	if err != nil {
		return nil, response.NewInternalError("게시글 수정 중 오류 발생", err)
	}
	if rows == 0 {
		return nil, response.NewNotFoundError(msgBoardNotFound, "")
	}

	return &dto.UpdateBoardResponse{
		Message: "게시글이 성공적으로 수정되었습니다.",
		BoardID: boardID,
	}, nil
}

// DeleteBoard removes the board with its comments and file rows in one transaction,
// then removes the stored files. Storage failures are logged and left to the cleanup job.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID uint) error {
	var files []*domain.File
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Boards.FindByID(ctx, boardID); err != nil {
			return err
		}

		var err error
		files, err = repos.Files.FindByBoardID(ctx, boardID)
		if err != nil {
			return err
		}
		if _, err := repos.Files.DeleteByBoardID(ctx, boardID); err != nil {
			return err
		}
		if _, err := repos.Comments.DeleteByBoardID(ctx, boardID); err != nil {
			return err
		}
		return repos.Boards.Delete(ctx, boardID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError(msgBoardNotFound, "")
		}
		return response.NewInternalError("게시글 삭제 중 오류 발생", err)
	}

	removeStoredFiles(ctx, s.storage, s.logger, files)

	s.logger.Info("Board deleted",
		zap.Uint("board_id", boardID),
		zap.Int("file_count", len(files)),
	)
	return nil
}

// IncrementViewCount adds one view in a single UPDATE
func (s *boardServiceImpl) IncrementViewCount(ctx context.Context, boardID uint) error {
	rows, err := s.boardRepo.IncrementViewCount(ctx, boardID)
	if err != nil {
		return response.NewInternalError("조회수 증가 중 오류 발생", err)
	}
	if rows == 0 {
		return response.NewNotFoundError(msgBoardNotFound, "")
	}
	return nil
}

// removeStoredFiles deletes the bytes behind already deleted File rows
func removeStoredFiles(ctx context.Context, fs storage.FileStorage, logger *zap.Logger, files []*domain.File) {
	for _, f := range files {
		err := fs.Delete(ctx, f.StoredName())
		if err == nil || errors.Is(err, storage.ErrNotFound) {
			continue
		}
		logger.Warn("Failed to remove stored file",
			zap.Uint("file_id", f.ID),
			zap.String("file_path", f.FilePath),
			zap.Error(err),
		)
	}
}
