package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/service"
	"bulletin-board-api/internal/storage"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

var testLogger = zap.NewNop()

// MockMemberService is a mock implementation of MemberService
type MockMemberService struct {
	RegisterFunc       func(ctx context.Context, req *dto.RegisterRequest) (*dto.MemberResponse, error)
	LoginFunc          func(ctx context.Context, req *dto.LoginRequest) (*dto.MemberResponse, error)
	VerifyPasswordFunc func(ctx context.Context, req *dto.VerifyPasswordRequest) (bool, error)
	UpdateUsernameFunc func(ctx context.Context, req *dto.UpdateUsernameRequest) error
	DeleteMemberFunc   func(ctx context.Context, email string) error
}

var _ service.MemberService = (*MockMemberService)(nil)

func (m *MockMemberService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.MemberResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return &dto.MemberResponse{}, nil
}

func (m *MockMemberService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.MemberResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &dto.MemberResponse{}, nil
}

func (m *MockMemberService) VerifyPassword(ctx context.Context, req *dto.VerifyPasswordRequest) (bool, error) {
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(ctx, req)
	}
	return false, nil
}

func (m *MockMemberService) UpdateUsername(ctx context.Context, req *dto.UpdateUsernameRequest) error {
	if m.UpdateUsernameFunc != nil {
		return m.UpdateUsernameFunc(ctx, req)
	}
	return nil
}

func (m *MockMemberService) DeleteMember(ctx context.Context, email string) error {
	if m.DeleteMemberFunc != nil {
		return m.DeleteMemberFunc(ctx, email)
	}
	return nil
}

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	ListBoardsFunc         func(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) (*dto.BoardListResponse, error)
	GetBoardDetailFunc     func(ctx context.Context, boardID uint) (*dto.BoardDetailResponse, error)
	WriteBoardFunc         func(ctx context.Context, req *dto.WriteBoardRequest) (*dto.WriteBoardResponse, error)
	UpdateBoardFunc        func(ctx context.Context, boardID uint, req *dto.UpdateBoardRequest) (*dto.UpdateBoardResponse, error)
	DeleteBoardFunc        func(ctx context.Context, boardID uint) error
	IncrementViewCountFunc func(ctx context.Context, boardID uint) error
}

var _ service.BoardService = (*MockBoardService)(nil)

func (m *MockBoardService) ListBoards(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) (*dto.BoardListResponse, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx, search, page)
	}
	return &dto.BoardListResponse{Content: []dto.BoardListItem{}}, nil
}

func (m *MockBoardService) GetBoardDetail(ctx context.Context, boardID uint) (*dto.BoardDetailResponse, error) {
	if m.GetBoardDetailFunc != nil {
		return m.GetBoardDetailFunc(ctx, boardID)
	}
	return &dto.BoardDetailResponse{ID: boardID, Files: []dto.FileResponse{}}, nil
}

func (m *MockBoardService) WriteBoard(ctx context.Context, req *dto.WriteBoardRequest) (*dto.WriteBoardResponse, error) {
	if m.WriteBoardFunc != nil {
		return m.WriteBoardFunc(ctx, req)
	}
	return &dto.WriteBoardResponse{BoardID: 1}, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, boardID uint, req *dto.UpdateBoardRequest) (*dto.UpdateBoardResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, boardID, req)
	}
	return &dto.UpdateBoardResponse{BoardID: boardID}, nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, boardID uint) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, boardID)
	}
	return nil
}

func (m *MockBoardService) IncrementViewCount(ctx context.Context, boardID uint) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, boardID)
	}
	return nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListCommentsFunc  func(ctx context.Context, boardID uint, page dto.PageRequest) (*dto.CommentListResponse, error)
	WriteCommentFunc  func(ctx context.Context, boardID, userID uint, req *dto.WriteCommentRequest) error
	UpdateCommentFunc func(ctx context.Context, boardID, commentID uint, req *dto.UpdateCommentRequest) error
	DeleteCommentFunc func(ctx context.Context, boardID, commentID uint, userEmail string) error
}

var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) ListComments(ctx context.Context, boardID uint, page dto.PageRequest) (*dto.CommentListResponse, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, boardID, page)
	}
	return &dto.CommentListResponse{Content: []dto.CommentResponse{}, PageSize: page.Size}, nil
}

func (m *MockCommentService) WriteComment(ctx context.Context, boardID, userID uint, req *dto.WriteCommentRequest) error {
	if m.WriteCommentFunc != nil {
		return m.WriteCommentFunc(ctx, boardID, userID, req)
	}
	return nil
}

func (m *MockCommentService) UpdateComment(ctx context.Context, boardID, commentID uint, req *dto.UpdateCommentRequest) error {
	if m.UpdateCommentFunc != nil {
		return m.UpdateCommentFunc(ctx, boardID, commentID, req)
	}
	return nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, boardID, commentID uint, userEmail string) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, boardID, commentID, userEmail)
	}
	return nil
}

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	UploadFilesFunc func(ctx context.Context, boardID uint, files []service.UploadedFile) ([]dto.FileResponse, error)
	OpenFileFunc    func(ctx context.Context, filename string) (io.ReadCloser, storage.ObjectInfo, error)
	DeleteFileFunc  func(ctx context.Context, boardID, fileID uint) error
}

var _ service.FileService = (*MockFileService)(nil)

func (m *MockFileService) UploadFiles(ctx context.Context, boardID uint, files []service.UploadedFile) ([]dto.FileResponse, error) {
	if m.UploadFilesFunc != nil {
		return m.UploadFilesFunc(ctx, boardID, files)
	}
	return []dto.FileResponse{}, nil
}

func (m *MockFileService) OpenFile(ctx context.Context, filename string) (io.ReadCloser, storage.ObjectInfo, error) {
	if m.OpenFileFunc != nil {
		return m.OpenFileFunc(ctx, filename)
	}
	return nil, storage.ObjectInfo{}, storage.ErrNotFound
}

func (m *MockFileService) DeleteFile(ctx context.Context, boardID, fileID uint) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, boardID, fileID)
	}
	return nil
}
