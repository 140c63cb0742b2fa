package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the repositories bound to one *gorm.DB, either the pool or a transaction
type Repositories struct {
	Members  MemberRepository
	Boards   BoardRepository
	Comments CommentRepository
	Files    FileRepository
}

// NewRepositories binds every repository to db
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Members:  NewMemberRepository(db),
		Boards:   NewBoardRepository(db),
		Comments: NewCommentRepository(db),
		Files:    NewFileRepository(db),
	}
}

// Transactor runs fn inside a single database transaction.
// The transaction commits when fn returns nil and rolls back on error or panic.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor backed by db
func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
