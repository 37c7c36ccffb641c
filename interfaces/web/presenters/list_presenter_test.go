package presenters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superlists/application"
	"superlists/domain/todo"
	"superlists/test/helpers"
)

func TestListPresenter_ToHomeViewModel(t *testing.T) {
	presenter := NewListPresenter()

	vm := presenter.ToHomeViewModel("", CSRF{})

	assert.Equal(t, "yey, waktunya berlibur", vm.Comment)
	assert.Equal(t, "/lists/new", vm.Form.Action)
	assert.Empty(t, vm.Form.Error)
	assert.Empty(t, vm.Form.CSRFToken)
}

func TestListPresenter_ToHomeViewModel_WithError(t *testing.T) {
	presenter := NewListPresenter()

	vm := presenter.ToHomeViewModel(todo.EmptyItemError, CSRF{Field: "csrf", Token: "tok"})

	assert.Equal(t, todo.EmptyItemError, vm.Form.Error)
	assert.Empty(t, vm.Comment, "a rejected new list shows only the error")
	assert.Equal(t, "csrf", vm.Form.CSRFField)
	assert.Equal(t, "tok", vm.Form.CSRFToken)
}

func TestListPresenter_ToListPageViewModel_Success(t *testing.T) {
	// Arrange
	presenter := NewListPresenter()
	list := &todo.List{ID: 4}
	data := &application.ListWithItemsData{
		List:      list,
		Items:     helpers.Items(list.ID, 2),
		ItemCount: 2,
		Comment:   todo.StatusComment(2),
	}

	// Act
	vm := presenter.ToListPageViewModel(data, "", CSRF{})

	// Assert
	require.NotNil(t, vm)
	assert.Equal(t, "/lists/4/", vm.Form.Action, "list form posts back to the list")
	assert.Equal(t, "sibuk tapi santai", vm.Comment)
	require.Len(t, vm.Items, 2)
	assert.Equal(t, ItemRow{Number: 1, Text: "item 1"}, vm.Items[0])
	assert.Equal(t, ItemRow{Number: 2, Text: "item 2"}, vm.Items[1])
}

func TestListPresenter_ToListPageViewModel_EdgeCases(t *testing.T) {
	presenter := NewListPresenter()

	tests := []struct {
		name            string
		data            *application.ListWithItemsData
		errorMessage    string
		expectedItems   int
		expectedComment string
	}{
		{
			name:            "nil data",
			data:            nil,
			expectedItems:   0,
			expectedComment: todo.CommentRelax,
		},
		{
			name: "empty list with error",
			data: &application.ListWithItemsData{
				List:    &todo.List{ID: 1},
				Items:   []*todo.Item{},
				Comment: todo.CommentRelax,
			},
			errorMessage:    todo.EmptyItemError,
			expectedItems:   0,
			expectedComment: todo.CommentRelax,
		},
		{
			name: "full list",
			data: &application.ListWithItemsData{
				List:      &todo.List{ID: 1},
				Items:     helpers.Items(1, 6),
				ItemCount: 6,
				Comment:   todo.CommentPanic,
			},
			expectedItems:   6,
			expectedComment: todo.CommentPanic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := presenter.ToListPageViewModel(tt.data, tt.errorMessage, CSRF{})

			require.NotNil(t, vm)
			assert.Len(t, vm.Items, tt.expectedItems)
			assert.Equal(t, tt.expectedComment, vm.Comment)
			assert.Equal(t, tt.errorMessage, vm.Form.Error)
		})
	}
}
