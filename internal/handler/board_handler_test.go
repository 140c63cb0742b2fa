package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/response"
)

func newBoardRouter(mock *MockBoardService) http.Handler {
	h := NewBoardHandler(mock, testLogger)
	router := setupTestRouter()
	router.GET("/board/list", h.ListBoards)
	router.POST("/board/write", h.WriteBoard)
	router.GET("/board/:id", h.GetBoard)
	router.DELETE("/board/:id", h.DeleteBoard)
	router.PATCH("/board/:id/update", h.UpdateBoard)
	router.POST("/board/:id/increment-view", h.IncrementViewCount)
	return router
}

func TestBoardHandler_ListBoards(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedSearch dto.BoardSearch
		expectedPage   dto.PageRequest
	}{
		{
			name:           "성공: 기본 페이지",
			query:          "",
			expectedStatus: http.StatusOK,
			expectedPage:   dto.PageRequest{Page: 0, Size: dto.DefaultBoardPageSize},
		},
		{
			name:           "성공: 검색 조건과 페이지 지정",
			query:          "?page=2&size=20&option=title&keyword=go",
			expectedStatus: http.StatusOK,
			expectedSearch: dto.BoardSearch{Option: "title", Keyword: "go"},
			expectedPage:   dto.PageRequest{Page: 2, Size: 20},
		},
		{name: "실패: 숫자가 아닌 페이지", query: "?page=abc", expectedStatus: http.StatusBadRequest},
		{name: "실패: 음수 페이지", query: "?page=-1", expectedStatus: http.StatusBadRequest},
		{name: "실패: 크기 0", query: "?size=0", expectedStatus: http.StatusBadRequest},
		{name: "실패: 최대 크기 초과", query: "?size=101", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			var gotSearch dto.BoardSearch
			var gotPage dto.PageRequest
			called := false
			mock := &MockBoardService{
				ListBoardsFunc: func(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) (*dto.BoardListResponse, error) {
					called = true
					gotSearch, gotPage = search, page
					return &dto.BoardListResponse{Content: []dto.BoardListItem{}}, nil
				},
			}

			// When
			w := doJSON(t, newBoardRouter(mock), http.MethodGet, "/board/list"+tt.query, nil)

			// Then
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.False(t, called)
				return
			}
			assert.Equal(t, tt.expectedSearch, gotSearch)
			assert.Equal(t, tt.expectedPage, gotPage)
		})
	}
}

func TestBoardHandler_ListBoards_FlatPayload(t *testing.T) {
	writer := "alice"
	mock := &MockBoardService{
		ListBoardsFunc: func(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) (*dto.BoardListResponse, error) {
			return &dto.BoardListResponse{
				Content:       []dto.BoardListItem{{ID: 1, Title: "t", CreatedDate: time.Now(), Writer: &writer}},
				TotalElements: 1,
				TotalPages:    1,
			}, nil
		},
	}

	w := doJSON(t, newBoardRouter(mock), http.MethodGet, "/board/list", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "content")
	assert.Contains(t, body, "totalElements")
	assert.Contains(t, body, "totalPages")
	assert.NotContains(t, body, "data")
}

func TestBoardHandler_GetBoard(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockService    func(*MockBoardService)
		expectedStatus int
	}{
		{
			name:           "성공: 게시글 조회",
			path:           "/board/3",
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "실패: 숫자가 아닌 ID",
			path:           "/board/abc",
			mockService:    func(m *MockBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "실패: 게시글이 존재하지 않음",
			path: "/board/99",
			mockService: func(m *MockBoardService) {
				m.GetBoardDetailFunc = func(ctx context.Context, boardID uint) (*dto.BoardDetailResponse, error) {
					return nil, response.NewNotFoundError("게시글을 찾을 수 없습니다.", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockBoardService{}
			tt.mockService(mock)

			w := doJSON(t, newBoardRouter(mock), http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBoardHandler_WriteBoard(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedWriter *uint
	}{
		{
			name:           "성공: 작성자 ID 숫자",
			requestBody:    map[string]interface{}{"title": "hello", "content": "body", "writerId": 4},
			expectedStatus: http.StatusCreated,
			expectedWriter: uintPtr(4),
		},
		{
			name:           "성공: 작성자 ID 문자열",
			requestBody:    map[string]interface{}{"title": "hello", "content": "body", "writerId": "4"},
			expectedStatus: http.StatusCreated,
			expectedWriter: uintPtr(4),
		},
		{
			name:           "성공: 작성자 없음",
			requestBody:    map[string]interface{}{"title": "hello", "content": "body"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "실패: 제목 누락",
			requestBody:    map[string]interface{}{"content": "body"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: 잘못된 작성자 ID",
			requestBody:    map[string]interface{}{"title": "hello", "writerId": "abc"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *dto.WriteBoardRequest
			mock := &MockBoardService{
				WriteBoardFunc: func(ctx context.Context, req *dto.WriteBoardRequest) (*dto.WriteBoardResponse, error) {
					got = req
					return &dto.WriteBoardResponse{BoardID: 12}, nil
				},
			}

			w := doJSON(t, newBoardRouter(mock), http.MethodPost, "/board/write", tt.requestBody)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var resp dto.WriteBoardResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, uint(12), resp.BoardID)
			require.NotNil(t, got)
			assert.Equal(t, tt.expectedWriter, got.WriterID.Value)
		})
	}
}

func TestBoardHandler_UpdateBoard(t *testing.T) {
	mock := &MockBoardService{
		UpdateBoardFunc: func(ctx context.Context, boardID uint, req *dto.UpdateBoardRequest) (*dto.UpdateBoardResponse, error) {
			if boardID != 5 {
				return nil, response.NewNotFoundError("게시글을 찾을 수 없습니다.", "")
			}
			return &dto.UpdateBoardResponse{Message: "게시글이 성공적으로 수정되었습니다.", BoardID: boardID}, nil
		},
	}
	router := newBoardRouter(mock)

	w := doJSON(t, router, http.MethodPatch, "/board/5/update", dto.UpdateBoardRequest{Title: "new", Content: "c"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.UpdateBoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(5), resp.BoardID)

	w = doJSON(t, router, http.MethodPatch, "/board/6/update", dto.UpdateBoardRequest{Title: "new"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/board/x/update", dto.UpdateBoardRequest{Title: "new"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBoardHandler_DeleteAndIncrement(t *testing.T) {
	mock := &MockBoardService{
		DeleteBoardFunc: func(ctx context.Context, boardID uint) error {
			if boardID == 404 {
				return response.NewNotFoundError("게시글을 찾을 수 없습니다.", "")
			}
			return nil
		},
		IncrementViewCountFunc: func(ctx context.Context, boardID uint) error {
			if boardID == 404 {
				return response.NewNotFoundError("게시글을 찾을 수 없습니다.", "")
			}
			return nil
		},
	}
	router := newBoardRouter(mock)

	w := doJSON(t, router, http.MethodDelete, "/board/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "게시글이 성공적으로 삭제되었습니다.", decodeMessage(t, w).Message)

	w = doJSON(t, router, http.MethodDelete, "/board/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/board/1/increment-view", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "조회수가 증가했습니다.", decodeMessage(t, w).Message)

	w = doJSON(t, router, http.MethodPost, "/board/404/increment-view", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func uintPtr(v uint) *uint {
	return &v
}
