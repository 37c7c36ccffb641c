package contracts

import (
	"context"

	"superlists/domain/todo"
)

// ListRepository defines operations for List entities.
type ListRepository interface {
	// CreateWithFirstItem persists a list and its first item in one transaction.
	// The item text is stored as given; callers validate beforehand.
	CreateWithFirstItem(ctx context.Context, text string) (*todo.List, *todo.Item, error)

	// GetByID retrieves a list by id, returning ErrListNotFound when absent.
	GetByID(ctx context.Context, listID int64) (*todo.List, error)
}
