package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bulletin-board-api/internal/database"
	"bulletin-board-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "board.db")), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createMember(t *testing.T, db *gorm.DB, email, username string) *domain.Member {
	t.Helper()
	m := &domain.Member{Email: email, Username: username, Password: "hash", Role: domain.RoleUser}
	require.NoError(t, db.Create(m).Error)
	return m
}

func createBoard(t *testing.T, db *gorm.DB, title string, memberID *uint, created time.Time) *domain.Board {
	t.Helper()
	b := &domain.Board{Title: title, Content: title + " content", MemberID: memberID}
	b.CreatedDate = created
	b.ModifiedDate = created
	require.NoError(t, db.Create(b).Error)
	return b
}

func TestTransactor_CommitsAndRollsBack(t *testing.T) {
	db := setupTestDB(t)
	tx := NewTransactor(db)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(repos Repositories) error {
		return repos.Members.Create(ctx, &domain.Member{Email: "a@test.com", Username: "a", Password: "h"})
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tx.WithinTransaction(ctx, func(repos Repositories) error {
		if err := repos.Members.Create(ctx, &domain.Member{Email: "b@test.com", Username: "b", Password: "h"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := NewMemberRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepositories_UpdatesUseDBClock(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	modified := created.Add(2 * time.Hour)
	now := created
	db.Config.NowFunc = func() time.Time { return now }

	member := createMember(t, db, "clock@test.com", "clock")
	board := &domain.Board{Title: "t", Content: "c", MemberID: &member.ID}
	require.NoError(t, NewBoardRepository(db).Create(ctx, board))
	comment := &domain.Comment{BoardID: board.ID, UserID: member.ID, Content: "c"}
	require.NoError(t, NewCommentRepository(db).Create(ctx, comment))

	now = modified
	_, err := NewBoardRepository(db).Update(ctx, board.ID, "t2", "c2")
	require.NoError(t, err)
	require.NoError(t, NewCommentRepository(db).UpdateContent(ctx, comment.ID, "c2"))
	_, err = NewMemberRepository(db).UpdateUsernameByEmail(ctx, member.Email, "clock2")
	require.NoError(t, err)

	var gotBoard domain.Board
	require.NoError(t, db.First(&gotBoard, board.ID).Error)
	assert.True(t, gotBoard.CreatedDate.Equal(created), gotBoard.CreatedDate)
	assert.True(t, gotBoard.ModifiedDate.Equal(modified), gotBoard.ModifiedDate)

	var gotComment domain.Comment
	require.NoError(t, db.First(&gotComment, comment.ID).Error)
	assert.True(t, gotComment.CreatedDate.Equal(created), gotComment.CreatedDate)
	assert.True(t, gotComment.ModifiedDate.Equal(modified), gotComment.ModifiedDate)

	var gotMember domain.Member
	require.NoError(t, db.First(&gotMember, member.ID).Error)
	assert.True(t, gotMember.ModifiedDate.Equal(modified), gotMember.ModifiedDate)
}
