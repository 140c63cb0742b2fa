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
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	ListComments(ctx context.Context, boardID uint, page dto.PageRequest) (*dto.CommentListResponse, error)
	WriteComment(ctx context.Context, boardID, userID uint, req *dto.WriteCommentRequest) error
	UpdateComment(ctx context.Context, boardID, commentID uint, req *dto.UpdateCommentRequest) error
	DeleteComment(ctx context.Context, boardID, commentID uint, userEmail string) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	boardRepo   repository.BoardRepository
	memberRepo  repository.MemberRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	boardRepo repository.BoardRepository,
	memberRepo repository.MemberRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		boardRepo:   boardRepo,
		memberRepo:  memberRepo,
		metrics:     m,
		logger:      logger,
	}
}

// ListComments returns one page of a board's comments. An unknown board yields an empty page.
func (s *commentServiceImpl) ListComments(ctx context.Context, boardID uint, page dto.PageRequest) (*dto.CommentListResponse, error) {
	comments, total, err := s.commentRepo.ListByBoardID(ctx, boardID, page)
	if err != nil {
		return nil, response.NewInternalError("Database error", err)
	}
	if comments == nil {
		comments = []dto.CommentResponse{}
	}

	return &dto.CommentListResponse{
		Content:       comments,
		PageSize:      page.Size,
		TotalPages:    dto.TotalPages(total, page.Size),
		TotalElements: total,
	}, nil
}

// WriteComment adds a comment by userID to the board
func (s *commentServiceImpl) WriteComment(ctx context.Context, boardID, userID uint, req *dto.WriteCommentRequest) error {
	exists, err := s.boardRepo.Exists(ctx, boardID)
	if err != nil {
		return response.NewInternalError("댓글 등록 중 오류 발생", err)
	}
	if !exists {
		return response.NewNotFoundError(msgBoardNotFound, "")
	}

	if _, err := s.memberRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewValidationError("User not found", "")
		}
		return response.NewInternalError("댓글 등록 중 오류 발생", err)
	}

	comment := &domain.Comment{
		BoardID: boardID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return response.NewInternalError("댓글 등록 중 오류 발생", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}
	return nil
}

// UpdateComment changes content when userEmail belongs to the comment's author
func (s *commentServiceImpl) UpdateComment(ctx context.Context, boardID, commentID uint, req *dto.UpdateCommentRequest) error {
	comment, err := s.authorize(ctx, boardID, commentID, req.UserEmail, "댓글 수정 권한이 없습니다.")
	if err != nil {
		return err
	}

	if err := s.commentRepo.UpdateContent(ctx, comment.ID, req.Content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("댓글을 찾을 수 없습니다.", "")
		}
		return response.NewInternalError("댓글 수정 중 오류 발생", err)
	}
	return nil
}

// DeleteComment removes the comment when userEmail belongs to its author
func (s *commentServiceImpl) DeleteComment(ctx context.Context, boardID, commentID uint, userEmail string) error {
	comment, err := s.authorize(ctx, boardID, commentID, userEmail, "댓글 삭제 권한이 없습니다.")
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("댓글을 찾을 수 없습니다.", "")
		}
		return response.NewInternalError("댓글 삭제 중 오류 발생", err)
	}
	return nil
}

// authorize loads the comment on the board and checks that email resolves to its author
func (s *commentServiceImpl) authorize(ctx context.Context, boardID, commentID uint, email, forbiddenMsg string) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByIDAndBoardID(ctx, commentID, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("댓글을 찾을 수 없습니다.", "")
		}
		return nil, response.NewInternalError("Failed to fetch comment", err)
	}

	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewForbiddenError(forbiddenMsg, "unknown email")
		}
		return nil, response.NewInternalError("Failed to fetch member", err)
	}

	if member.ID != comment.UserID {
		return nil, response.NewForbiddenError(forbiddenMsg, "")
	}
	return comment, nil
}
