package service

import (
	"context"

	"bulletin-board-api/internal/domain"
	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/repository"
)

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	CreateFunc                func(ctx context.Context, member *domain.Member) error
	FindByIDFunc              func(ctx context.Context, id uint) (*domain.Member, error)
	FindByEmailFunc           func(ctx context.Context, email string) (*domain.Member, error)
	FindByUsernameFunc        func(ctx context.Context, username string) ([]*domain.Member, error)
	ExistsByEmailFunc         func(ctx context.Context, email string) (bool, error)
	UpdateUsernameByEmailFunc func(ctx context.Context, email, username string) (int64, error)
	DeleteFunc                func(ctx context.Context, id uint) error
	CountFunc                 func(ctx context.Context) (int64, error)
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id uint) (*domain.Member, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMemberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockMemberRepository) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockMemberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockMemberRepository) UpdateUsernameByEmail(ctx context.Context, email, username string) (int64, error) {
	if m.UpdateUsernameByEmailFunc != nil {
		return m.UpdateUsernameByEmailFunc(ctx, email, username)
	}
	return 0, nil
}

func (m *MockMemberRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockMemberRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc             func(ctx context.Context, board *domain.Board) error
	FindByIDFunc           func(ctx context.Context, id uint) (*domain.Board, error)
	FindDetailFunc         func(ctx context.Context, id uint) (*repository.BoardDetail, error)
	ListFunc               func(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) ([]dto.BoardListItem, int64, error)
	UpdateFunc             func(ctx context.Context, id uint, title, content string) (int64, error)
	IncrementViewCountFunc func(ctx context.Context, id uint) (int64, error)
	DetachMemberFunc       func(ctx context.Context, memberID uint) (int64, error)
	DeleteFunc             func(ctx context.Context, id uint) error
	ExistsFunc             func(ctx context.Context, id uint) (bool, error)
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uint) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindDetail(ctx context.Context, id uint) (*repository.BoardDetail, error) {
	if m.FindDetailFunc != nil {
		return m.FindDetailFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) List(ctx context.Context, search dto.BoardSearch, page dto.PageRequest) ([]dto.BoardListItem, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search, page)
	}
	return nil, 0, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, id uint, title, content string) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, title, content)
	}
	return 0, nil
}

func (m *MockBoardRepository) IncrementViewCount(ctx context.Context, id uint) (int64, error) {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, id)
	}
	return 0, nil
}

func (m *MockBoardRepository) DetachMember(ctx context.Context, memberID uint) (int64, error) {
	if m.DetachMemberFunc != nil {
		return m.DetachMemberFunc(ctx, memberID)
	}
	return 0, nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// fakeLoginGuard counts failures in memory
type fakeLoginGuard struct {
	max      int
	failures map[string]int
	checkErr error
}

func newFakeLoginGuard(max int) *fakeLoginGuard {
	return &fakeLoginGuard{max: max, failures: make(map[string]int)}
}

func (g *fakeLoginGuard) Check(_ context.Context, username string) error {
	if g.checkErr != nil {
		return g.checkErr
	}
	if g.failures[username] >= g.max {
		return ErrLoginLocked
	}
	return nil
}

func (g *fakeLoginGuard) RecordFailure(_ context.Context, username string) error {
	g.failures[username]++
	return nil
}

func (g *fakeLoginGuard) Reset(_ context.Context, username string) error {
	delete(g.failures, username)
	return nil
}
