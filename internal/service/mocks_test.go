package service

import (
	"context"

	"github.com/boardflab/boardflab-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PostRepository ---

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) FindByID(ctx context.Context, id uint64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) ListByBoard(ctx context.Context, boardID uint64, limit, offset int) ([]*domain.PostSummary, error) {
	args := m.Called(ctx, boardID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PostSummary), args.Error(1)
}

func (m *mockPostRepo) IsLoginRequired(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepo) UpdateContent(ctx context.Context, id uint64, content string) (int64, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepo) IncrementViews(ctx context.Context, id uint64) (uint64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint64), args.Error(1)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetID(ctx context.Context, username string) (uint64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// --- Mock BoardRepository ---

type mockBoardRepo struct {
	mock.Mock
}

func (m *mockBoardRepo) FindByID(ctx context.Context, id uint64) (*domain.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *mockBoardRepo) FindAll(ctx context.Context) ([]*domain.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Board), args.Error(1)
}

func (m *mockBoardRepo) IsLoginRequired(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock ImageRepository ---

type mockImageRepo struct {
	mock.Mock
}

func (m *mockImageRepo) GetIDs(ctx context.Context, postID uint64) ([]uint64, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}
