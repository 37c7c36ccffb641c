package presenters

import (
	"superlists/application"
)

// ListPresenterInterface defines the contract for list presentation logic.
type ListPresenterInterface interface {
	// ToHomeViewModel converts an optional error into the HomeVM view model.
	ToHomeViewModel(errorMessage string, csrf CSRF) *HomeVM

	// ToListPageViewModel converts service data to ListPageVM view model.
	ToListPageViewModel(data *application.ListWithItemsData, errorMessage string, csrf CSRF) *ListPageVM
}

// Ensure ListPresenter implements the interface.
var _ ListPresenterInterface = (*ListPresenter)(nil)
