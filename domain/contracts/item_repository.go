package contracts

import (
	"context"

	"superlists/domain/todo"
)

// ItemRepository defines operations for Item entities.
type ItemRepository interface {
	// Save inserts the item and sets its ID.
	Save(ctx context.Context, item *todo.Item) error

	// GetForList returns a list's items in insertion order.
	GetForList(ctx context.Context, listID int64) ([]*todo.Item, error)

	// CountForList returns how many items a list holds.
	CountForList(ctx context.Context, listID int64) (int64, error)
}
