package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superlists/database"
	"superlists/domain/contracts"
	"superlists/domain/todo"
	"superlists/test/helpers"
)

func countLists(t *testing.T, store *database.Database) int64 {
	t.Helper()
	var count int64
	require.NoError(t, store.ReadDB().QueryRow("SELECT COUNT(*) FROM lists").Scan(&count))
	return count
}

func TestSqlcListRepository_GetByID(t *testing.T) {
	store := helpers.NewTestDatabase(t)
	repo := NewSqlcListRepository(store)

	listID := helpers.SeedList(t, store, "Buy milk")

	fetched, err := repo.GetByID(context.Background(), listID)
	require.NoError(t, err)
	assert.Equal(t, listID, fetched.ID)
}

func TestSqlcListRepository_GetByID_NotFound(t *testing.T) {
	store := helpers.NewTestDatabase(t)
	repo := NewSqlcListRepository(store)

	list, err := repo.GetByID(context.Background(), 999)
	assert.Nil(t, list)
	assert.True(t, errors.Is(err, contracts.ErrListNotFound))
}

func TestSqlcListRepository_CreateWithFirstItem(t *testing.T) {
	store := helpers.NewTestDatabase(t)
	lists := NewSqlcListRepository(store)
	items := NewSqlcItemRepository(store)
	ctx := context.Background()

	list, item, err := lists.CreateWithFirstItem(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, list.ID, item.ListID)
	assert.NotZero(t, item.ID)
	assert.Equal(t, int64(1), countLists(t, store))

	stored, err := items.GetForList(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Buy milk", stored[0].Text)
}

func TestSqlcListRepository_CreateWithFirstItem_RollsBackWhenCancelled(t *testing.T) {
	store := helpers.NewTestDatabase(t)
	lists := NewSqlcListRepository(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := lists.CreateWithFirstItem(ctx, "never stored")
	require.Error(t, err)

	assert.Equal(t, int64(0), countLists(t, store))
}

func TestSqlcItemRepository_SaveAndCount(t *testing.T) {
	store := helpers.NewTestDatabase(t)
	items := NewSqlcItemRepository(store)
	ctx := context.Background()

	first := helpers.SeedList(t, store)
	second := helpers.SeedList(t, store, "other list item")

	for _, text := range []string{"itemey 1", "itemey 2"} {
		item := todo.NewItem(&todo.List{ID: first}, text)
		require.NoError(t, items.Save(ctx, item))
		assert.NotZero(t, item.ID)
	}

	count, err := items.CountForList(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	stored, err := items.GetForList(ctx, first)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "itemey 1", stored[0].Text)
	assert.Equal(t, "itemey 2", stored[1].Text)

	other, err := items.CountForList(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestSqlcItemRepository_SaveRejectsUnknownList(t *testing.T) {
	store := helpers.NewTestDatabase(t)
	items := NewSqlcItemRepository(store)

	err := items.Save(context.Background(), &todo.Item{Text: "orphan", ListID: 12345})
	assert.Error(t, err)
}

func TestSqlcItemRepository_GetForList_Empty(t *testing.T) {
	store := helpers.NewTestDatabase(t)
	items := NewSqlcItemRepository(store)

	listID := helpers.SeedList(t, store)
	stored, err := items.GetForList(context.Background(), listID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
