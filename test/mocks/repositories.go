package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"superlists/domain/contracts"
	"superlists/domain/todo"
)

// MockListRepository implements ListRepository for testing
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) CreateWithFirstItem(ctx context.Context, text string) (*todo.List, *todo.Item, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*todo.List), args.Get(1).(*todo.Item), args.Error(2)
}

func (m *MockListRepository) GetByID(ctx context.Context, listID int64) (*todo.List, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.List), args.Error(1)
}

// MockItemRepository implements ItemRepository for testing
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Save(ctx context.Context, item *todo.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) GetForList(ctx context.Context, listID int64) ([]*todo.Item, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*todo.Item), args.Error(1)
}

func (m *MockItemRepository) CountForList(ctx context.Context, listID int64) (int64, error) {
	args := m.Called(ctx, listID)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ contracts.ListRepository = (*MockListRepository)(nil)
	_ contracts.ItemRepository = (*MockItemRepository)(nil)
)
