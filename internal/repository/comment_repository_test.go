package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bulletin-board-api/internal/domain"
	"bulletin-board-api/internal/dto"
)

func TestCommentRepository_ListByBoardID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createMember(t, db, "alice@test.com", "alice")
	board := createBoard(t, db, "post", nil, time.Now().UTC())
	other := createBoard(t, db, "other", nil, time.Now().UTC())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		c := &domain.Comment{BoardID: board.ID, UserID: alice.ID, Content: string(rune('a' + i))}
		c.CreatedDate = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, c))
	}
	require.NoError(t, repo.Create(ctx, &domain.Comment{BoardID: other.ID, UserID: alice.ID, Content: "x"}))

	comments, total, err := repo.ListByBoardID(ctx, board.ID, dto.PageRequest{Page: 0, Size: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, comments, 5)
	assert.Equal(t, "g", comments[0].Content)
	require.NotNil(t, comments[0].Writer)
	assert.Equal(t, "alice", *comments[0].Writer)

	comments, _, err = repo.ListByBoardID(ctx, board.ID, dto.PageRequest{Page: 1, Size: 5})
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	comments, total, err = repo.ListByBoardID(ctx, 9999, dto.PageRequest{Page: 0, Size: 5})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, comments)
}

func TestCommentRepository_FindUpdateDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createMember(t, db, "alice@test.com", "alice")
	board := createBoard(t, db, "post", nil, time.Now().UTC())
	other := createBoard(t, db, "other", nil, time.Now().UTC())

	comment := &domain.Comment{BoardID: board.ID, UserID: alice.ID, Content: "first"}
	require.NoError(t, repo.Create(ctx, comment))

	found, err := repo.FindByIDAndBoardID(ctx, comment.ID, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", found.Content)

	_, err = repo.FindByIDAndBoardID(ctx, comment.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.UpdateContent(ctx, comment.ID, "edited"))
	found, err = repo.FindByIDAndBoardID(ctx, comment.ID, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", found.Content)

	require.NoError(t, repo.Delete(ctx, comment.ID))
	assert.ErrorIs(t, repo.Delete(ctx, comment.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.UpdateContent(ctx, comment.ID, "again"), gorm.ErrRecordNotFound)
}

func TestCommentRepository_DeleteByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createMember(t, db, "alice@test.com", "alice")
	bob := createMember(t, db, "bob@test.com", "bob")
	board := createBoard(t, db, "post", nil, time.Now().UTC())

	require.NoError(t, repo.Create(ctx, &domain.Comment{BoardID: board.ID, UserID: alice.ID, Content: "a1"}))
	require.NoError(t, repo.Create(ctx, &domain.Comment{BoardID: board.ID, UserID: alice.ID, Content: "a2"}))
	require.NoError(t, repo.Create(ctx, &domain.Comment{BoardID: board.ID, UserID: bob.ID, Content: "b1"}))

	rows, err := repo.DeleteByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
