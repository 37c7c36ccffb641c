package todo

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// EmptyItemError is shown to the user when an item has no text.
const EmptyItemError = "You can't have an empty list item"

// Item is a single to-do entry owned by exactly one List.
type Item struct {
	ID     int64
	Text   string
	ListID int64
}

// NewItem binds text to a list. The item is not validated.
func NewItem(list *List, text string) *Item {
	return &Item{Text: text, ListID: list.ID}
}

// Validate checks the item against the domain rules.
func (i *Item) Validate() error {
	return ValidateItemText(i.Text)
}

// ValidationError reports why item input was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

type itemInput struct {
	Text string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateItemText returns nil when text is non-empty after trimming,
// and a *ValidationError otherwise.
func ValidateItemText(text string) error {
	input := itemInput{Text: strings.TrimSpace(text)}
	if err := validate.Struct(input); err != nil {
		return &ValidationError{Field: "text", Message: EmptyItemError}
	}
	return nil
}
