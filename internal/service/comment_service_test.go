package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulletin-board-api/internal/domain"
	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/response"
)

func TestCommentService_WriteComment(t *testing.T) {
	env := newTestEnv(t)
	svc := env.commentService()
	ctx := context.Background()

	alice := env.createMember(t, "alice@test.com", "alice")
	board := env.createBoard(t, "post", nil)

	tests := []struct {
		name     string
		boardID  uint
		userID   uint
		wantCode string
	}{
		{name: "성공: 댓글 작성", boardID: board.ID, userID: alice.ID},
		{name: "실패: 없는 게시글", boardID: 9999, userID: alice.ID, wantCode: response.ErrCodeNotFound},
		{name: "실패: 없는 회원", boardID: board.ID, userID: 9999, wantCode: response.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.WriteComment(ctx, tt.boardID, tt.userID, &dto.WriteCommentRequest{Content: "nice"})
			if tt.wantCode != "" {
				assertAppError(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
		})
	}

	count, err := env.repos.Comments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.CommentCreatedTotal))
}

func TestCommentService_ListComments(t *testing.T) {
	env := newTestEnv(t)
	svc := env.commentService()
	ctx := context.Background()

	alice := env.createMember(t, "alice@test.com", "alice")
	board := env.createBoard(t, "post", nil)
	for i := 0; i < 6; i++ {
		require.NoError(t, svc.WriteComment(ctx, board.ID, alice.ID, &dto.WriteCommentRequest{Content: "c"}))
	}

	res, err := svc.ListComments(ctx, board.ID, dto.PageRequest{Page: 0, Size: dto.DefaultCommentPageSize})
	require.NoError(t, err)
	assert.Len(t, res.Content, 5)
	assert.Equal(t, 5, res.PageSize)
	assert.Equal(t, int64(6), res.TotalElements)
	assert.Equal(t, 2, res.TotalPages)
	require.NotNil(t, res.Content[0].Writer)
	assert.Equal(t, "alice", *res.Content[0].Writer)

	empty, err := svc.ListComments(ctx, 9999, dto.PageRequest{Page: 0, Size: 5})
	require.NoError(t, err)
	assert.NotNil(t, empty.Content)
	assert.Empty(t, empty.Content)
	assert.Zero(t, empty.TotalPages)
}

func TestCommentService_UpdateAndDelete_Ownership(t *testing.T) {
	env := newTestEnv(t)
	svc := env.commentService()
	ctx := context.Background()

	alice := env.createMember(t, "alice@test.com", "alice")
	env.createMember(t, "bob@test.com", "bob")
	board := env.createBoard(t, "post", nil)
	other := env.createBoard(t, "other", nil)

	comment := &domain.Comment{BoardID: board.ID, UserID: alice.ID, Content: "original"}
	require.NoError(t, env.db.Create(comment).Error)

	reload := func() *domain.Comment {
		c, err := env.repos.Comments.FindByIDAndBoardID(ctx, comment.ID, board.ID)
		require.NoError(t, err)
		return c
	}

	tests := []struct {
		name     string
		boardID  uint
		email    string
		wantCode string
	}{
		{name: "실패: 작성자가 아닌 회원", boardID: board.ID, email: "bob@test.com", wantCode: response.ErrCodeForbidden},
		{name: "실패: 알 수 없는 이메일", boardID: board.ID, email: "ghost@test.com", wantCode: response.ErrCodeForbidden},
		{name: "실패: 다른 게시글의 댓글", boardID: other.ID, email: "alice@test.com", wantCode: response.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run("수정 "+tt.name, func(t *testing.T) {
			err := svc.UpdateComment(ctx, tt.boardID, comment.ID, &dto.UpdateCommentRequest{Content: "hacked", UserEmail: tt.email})
			assertAppError(t, err, tt.wantCode)
			assert.Equal(t, "original", reload().Content)
		})
		t.Run("삭제 "+tt.name, func(t *testing.T) {
			err := svc.DeleteComment(ctx, tt.boardID, comment.ID, tt.email)
			assertAppError(t, err, tt.wantCode)
			assert.Equal(t, "original", reload().Content)
		})
	}

	t.Run("성공: 작성자 수정", func(t *testing.T) {
		require.NoError(t, svc.UpdateComment(ctx, board.ID, comment.ID, &dto.UpdateCommentRequest{Content: "edited", UserEmail: "alice@test.com"}))
		updated := reload()
		assert.Equal(t, "edited", updated.Content)
		assert.False(t, updated.ModifiedDate.Before(comment.ModifiedDate))
	})

	t.Run("성공: 작성자 삭제", func(t *testing.T) {
		require.NoError(t, svc.DeleteComment(ctx, board.ID, comment.ID, "alice@test.com"))
		err := svc.DeleteComment(ctx, board.ID, comment.ID, "alice@test.com")
		assertAppError(t, err, response.ErrCodeNotFound)
	})
}
