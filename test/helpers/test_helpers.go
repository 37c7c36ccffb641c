package helpers

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"superlists/database"
	"superlists/domain/todo"
	"superlists/gen/db"
	"superlists/logging"
	"superlists/test/mocks"
)

// QuietLogger returns a logger that discards everything.
func QuietLogger() *logging.Logger {
	return logging.NewLoggerTo(io.Discard, &logging.Config{Level: "error"})
}

// NewTestDatabase opens a migrated SQLite database in a per-test temp dir.
func NewTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	cfg := database.DefaultConfig(filepath.Join(t.TempDir(), "superlists_test.db"))
	store, err := database.New(cfg, QuietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// SeedList creates a list holding the given item texts and returns its id.
func SeedList(t *testing.T, store *database.Database, texts ...string) int64 {
	t.Helper()
	ctx := context.Background()
	q := store.WriteQueries()

	listID, err := q.CreateList(ctx)
	require.NoError(t, err)

	for _, text := range texts {
		_, err := q.InsertItem(ctx, db.InsertItemParams{Text: text, ListID: listID})
		require.NoError(t, err)
	}
	return listID
}

// MockRepositories holds all repository mocks for easy injection
type MockRepositories struct {
	List *mocks.MockListRepository
	Item *mocks.MockItemRepository
}

// NewMockRepositories creates a new set of repository mocks
func NewMockRepositories() *MockRepositories {
	return &MockRepositories{
		List: &mocks.MockListRepository{},
		Item: &mocks.MockItemRepository{},
	}
}

// ExpectList sets up a successful lookup of list and its items.
func (m *MockRepositories) ExpectList(list *todo.List, items []*todo.Item) {
	m.List.On("GetByID", mock.Anything, list.ID).Return(list, nil)
	m.Item.On("CountForList", mock.Anything, list.ID).Return(int64(len(items)), nil)
	m.Item.On("GetForList", mock.Anything, list.ID).Return(items, nil)
}

// AssertExpectations verifies every mock in the bundle.
func (m *MockRepositories) AssertExpectations(t *testing.T) {
	m.List.AssertExpectations(t)
	m.Item.AssertExpectations(t)
}

// Items builds n numbered items for listID.
func Items(listID int64, n int) []*todo.Item {
	items := make([]*todo.Item, n)
	for i := range items {
		items[i] = &todo.Item{ID: int64(i + 1), Text: fmt.Sprintf("item %d", i+1), ListID: listID}
	}
	return items
}
