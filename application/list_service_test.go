package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"superlists/domain/contracts"
	"superlists/domain/todo"
	"superlists/infrastructure/repositories"
	"superlists/logging"
	"superlists/test/helpers"
)

func TestListService_GetListWithItems(t *testing.T) {
	tests := []struct {
		name            string
		itemCount       int
		expectedComment string
	}{
		{"empty list", 0, "yey, waktunya berlibur"},
		{"one item", 1, "sibuk tapi santai"},
		{"four items", 4, "sibuk tapi santai"},
		{"five items", 5, "oh tidak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := helpers.NewMockRepositories()
			list := &todo.List{ID: 1}
			items := helpers.Items(list.ID, tt.itemCount)

			repos.ExpectList(list, items)
			service := NewListService(repos.List, repos.Item)

			data, err := service.GetListWithItems(context.Background(), list.ID)
			require.NoError(t, err)

			assert.Equal(t, list, data.List)
			assert.Len(t, data.Items, tt.itemCount)
			assert.Equal(t, int64(tt.itemCount), data.ItemCount)
			assert.Equal(t, tt.expectedComment, data.Comment)
			repos.AssertExpectations(t)
		})
	}
}

func TestListService_GetListWithItems_LogsTiming(t *testing.T) {
	var buf bytes.Buffer
	previous := logging.Default()
	logging.SetDefault(logging.NewLoggerTo(&buf, &logging.Config{Level: "info", Format: "json"}))
	t.Cleanup(func() { logging.SetDefault(previous) })

	repos := helpers.NewMockRepositories()
	list := &todo.List{ID: 7}
	repos.ExpectList(list, helpers.Items(list.ID, 3))
	service := NewListService(repos.List, repos.Item)

	_, err := service.GetListWithItems(context.Background(), list.ID)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "performance", entry["msg"])
	assert.Equal(t, "get_list_with_items", entry["operation"])
	assert.Equal(t, "list_service", entry["component"])
	assert.Equal(t, float64(7), entry["list_id"])
	assert.Equal(t, float64(3), entry["item_count"])
	assert.Contains(t, entry, "duration_ms")
}

func TestListService_GetListWithItems_NotFound(t *testing.T) {
	repos := helpers.NewMockRepositories()
	repos.List.On("GetByID", mock.Anything, int64(404)).
		Return(nil, fmt.Errorf("list 404: %w", contracts.ErrListNotFound))

	service := NewListService(repos.List, repos.Item)

	data, err := service.GetListWithItems(context.Background(), 404)
	assert.Nil(t, data)
	assert.ErrorIs(t, err, contracts.ErrListNotFound)
	repos.Item.AssertNotCalled(t, "CountForList", mock.Anything, mock.Anything)
}

func TestListService_AddItem(t *testing.T) {
	t.Run("valid text is saved", func(t *testing.T) {
		repos := helpers.NewMockRepositories()
		list := &todo.List{ID: 3}
		repos.Item.On("Save", mock.Anything, mock.MatchedBy(func(item *todo.Item) bool {
			return item.ListID == 3 && item.Text == "Buy milk"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*todo.Item).ID = 10
		}).Return(nil)

		service := NewListService(repos.List, repos.Item)
		item, err := service.AddItem(context.Background(), list, "Buy milk")

		require.NoError(t, err)
		assert.Equal(t, int64(10), item.ID)
		repos.AssertExpectations(t)
	})

	t.Run("blank text is rejected without saving", func(t *testing.T) {
		repos := helpers.NewMockRepositories()
		service := NewListService(repos.List, repos.Item)

		for _, text := range []string{"", "   ", "\t\n"} {
			item, err := service.AddItem(context.Background(), &todo.List{ID: 3}, text)
			assert.Nil(t, item)

			var vErr *todo.ValidationError
			require.True(t, errors.As(err, &vErr), "text=%q", text)
			assert.Equal(t, todo.EmptyItemError, vErr.Message)
		}
		repos.Item.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		repos := helpers.NewMockRepositories()
		boom := errors.New("disk full")
		repos.Item.On("Save", mock.Anything, mock.Anything).Return(boom)

		service := NewListService(repos.List, repos.Item)
		_, err := service.AddItem(context.Background(), &todo.List{ID: 3}, "Buy milk")

		assert.ErrorIs(t, err, boom)
		var vErr *todo.ValidationError
		assert.False(t, errors.As(err, &vErr))
	})
}

func TestListService_StartList(t *testing.T) {
	t.Run("valid text creates list and item", func(t *testing.T) {
		repos := helpers.NewMockRepositories()
		list := &todo.List{ID: 8}
		repos.List.On("CreateWithFirstItem", mock.Anything, "Buy milk").
			Return(list, &todo.Item{ID: 1, Text: "Buy milk", ListID: 8}, nil)

		service := NewListService(repos.List, repos.Item)
		created, err := service.StartList(context.Background(), "Buy milk")

		require.NoError(t, err)
		assert.Equal(t, list, created)
		repos.AssertExpectations(t)
	})

	t.Run("blank text writes nothing", func(t *testing.T) {
		repos := helpers.NewMockRepositories()
		service := NewListService(repos.List, repos.Item)

		_, err := service.StartList(context.Background(), "  ")

		var vErr *todo.ValidationError
		require.True(t, errors.As(err, &vErr))
		repos.List.AssertNotCalled(t, "CreateWithFirstItem", mock.Anything, mock.Anything)
	})
}

func TestListService_WithSQLite(t *testing.T) {
	store := helpers.NewTestDatabase(t)
	lists := repositories.NewSqlcListRepository(store)
	items := repositories.NewSqlcItemRepository(store)
	service := NewListService(lists, items)
	ctx := context.Background()

	_, err := service.StartList(ctx, "")
	require.Error(t, err)
	var count int64
	require.NoError(t, store.ReadDB().QueryRow("SELECT COUNT(*) FROM lists").Scan(&count))
	assert.Equal(t, int64(0), count, "a rejected first item must not leave a list behind")

	list, err := service.StartList(ctx, "Buy peacock feathers")
	require.NoError(t, err)

	for _, text := range []string{"Use feathers to make a fly", "Go fishing", "Eat fish", "Sleep"} {
		_, err := service.AddItem(ctx, list, text)
		require.NoError(t, err)
	}

	data, err := service.GetListWithItems(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), data.ItemCount)
	assert.Equal(t, todo.CommentPanic, data.Comment)
	assert.Equal(t, "Buy peacock feathers", data.Items[0].Text)
	assert.Equal(t, "Sleep", data.Items[4].Text)
}
