// Package presenters transforms domain data into UI-ready view models.
package presenters

import (
	"superlists/application"
	"superlists/domain/todo"
)

// NewListAction is where the home page form posts to start a list.
const NewListAction = "/lists/new"

// ItemFormVM drives the single "new item" input shared by both pages.
type ItemFormVM struct {
	Action    string
	Error     string
	CSRFField string
	CSRFToken string
}

// ItemRow is one numbered line of the list table.
type ItemRow struct {
	Number int
	Text   string
}

// HomeVM is the view model for the landing page
type HomeVM struct {
	Comment string
	Form    ItemFormVM
}

// ListPageVM is the view model for a single list page
type ListPageVM struct {
	Comment string
	Items   []ItemRow
	Form    ItemFormVM
}

// ListPresenter transforms lists and items for UI display.
type ListPresenter struct{}

// NewListPresenter creates a list presenter.
func NewListPresenter() *ListPresenter {
	return &ListPresenter{}
}

// ToHomeViewModel builds the landing page. errorMessage is empty unless a new list
// was rejected, in which case the page carries only the error and no comment.
func (p *ListPresenter) ToHomeViewModel(errorMessage string, csrf CSRF) *HomeVM {
	vm := &HomeVM{
		Form: p.itemForm(NewListAction, errorMessage, csrf),
	}
	if errorMessage == "" {
		vm.Comment = todo.StatusComment(0)
	}
	return vm
}

// ToListPageViewModel builds a list page from service data.
// Returns safe defaults if data is nil.
func (p *ListPresenter) ToListPageViewModel(data *application.ListWithItemsData, errorMessage string, csrf CSRF) *ListPageVM {
	if data == nil || data.List == nil {
		return &ListPageVM{
			Comment: todo.StatusComment(0),
			Items:   []ItemRow{},
			Form:    p.itemForm(NewListAction, errorMessage, csrf),
		}
	}

	return &ListPageVM{
		Comment: data.Comment,
		Items:   p.toItemRows(data.Items),
		Form:    p.itemForm(data.List.URL(), errorMessage, csrf),
	}
}

func (p *ListPresenter) toItemRows(items []*todo.Item) []ItemRow {
	rows := make([]ItemRow, len(items))
	for i, item := range items {
		rows[i] = ItemRow{Number: i + 1, Text: item.Text}
	}
	return rows
}

func (p *ListPresenter) itemForm(action, errorMessage string, csrf CSRF) ItemFormVM {
	return ItemFormVM{
		Action:    action,
		Error:     errorMessage,
		CSRFField: csrf.Field,
		CSRFToken: csrf.Token,
	}
}

// CSRF carries the form protection field for the current request. The zero value renders no hidden field.
type CSRF struct {
	Field string
	Token string
}
