package pages

import (
	"context"
	"html"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superlists/domain/todo"
	"superlists/interfaces/web/presenters"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, component.Render(context.Background(), &buf))
	return buf.String()
}

func TestHomePage_Renders(t *testing.T) {
	vm := presenters.NewListPresenter().ToHomeViewModel("", presenters.CSRF{})

	out := render(t, HomePage(*vm))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>To-Do lists</title>")
	assert.Contains(t, out, `action="/lists/new"`)
	assert.Contains(t, out, `name="item_text"`)
	assert.Contains(t, out, "yey, waktunya berlibur")
	assert.NotContains(t, out, "has-error")
	assert.NotContains(t, out, `type="hidden"`)
}

func TestHomePage_RendersErrorAndCSRF(t *testing.T) {
	vm := presenters.NewListPresenter().ToHomeViewModel(todo.EmptyItemError, presenters.CSRF{Field: "csrf_token", Token: "abc"})

	out := render(t, HomePage(*vm))

	assert.Contains(t, out, html.EscapeString(todo.EmptyItemError))
	assert.NotContains(t, out, todo.CommentRelax)
	assert.Contains(t, out, `<input type="hidden" name="csrf_token" value="abc">`)
}

func TestListPage_RendersItemsInOrder(t *testing.T) {
	vm := presenters.ListPageVM{
		Comment: todo.CommentBusy,
		Items: []presenters.ItemRow{
			{Number: 1, Text: "Buy peacock feathers"},
			{Number: 2, Text: "Use <feathers> to make a fly"},
		},
		Form: presenters.ItemFormVM{Action: "/lists/3/"},
	}

	out := render(t, ListPage(vm))

	assert.Contains(t, out, `action="/lists/3/"`)
	assert.Contains(t, out, "sibuk tapi santai")
	first := strings.Index(out, "1: Buy peacock feathers")
	second := strings.Index(out, "2: Use &lt;feathers&gt; to make a fly")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestItemLabel(t *testing.T) {
	assert.Equal(t, "7: Go fishing", itemLabel(7, "Go fishing"))
}
