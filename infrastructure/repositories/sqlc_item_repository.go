package repositories

import (
	"context"
	"fmt"

	"superlists/database"
	"superlists/domain/contracts"
	"superlists/domain/todo"
	"superlists/gen/db"
)

// SqlcItemRepository implements contracts.ItemRepository using sqlc with read/write separation
type SqlcItemRepository struct {
	*BaseRepository
}

// NewSqlcItemRepository creates a new item repository with read/write database separation
func NewSqlcItemRepository(database *database.Database) contracts.ItemRepository {
	return &SqlcItemRepository{
		BaseRepository: NewBaseRepository(database),
	}
}

// Save inserts the item and sets its ID
func (r *SqlcItemRepository) Save(ctx context.Context, item *todo.Item) error {
	row, err := r.WriteQueries().InsertItem(ctx, db.InsertItemParams{
		Text:   item.Text,
		ListID: item.ListID,
	})
	if err != nil {
		return fmt.Errorf("insert item for list %d: %w", item.ListID, err)
	}
	item.ID = row.ID
	return nil
}

// GetForList retrieves all items for a list in insertion order
func (r *SqlcItemRepository) GetForList(ctx context.Context, listID int64) ([]*todo.Item, error) {
	rows, err := r.ReadQueries().ItemsForList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("items for list %d: %w", listID, err)
	}

	items := make([]*todo.Item, len(rows))
	for i, row := range rows {
		items[i] = toDomainItem(row)
	}
	return items, nil
}

// CountForList returns how many items a list holds
func (r *SqlcItemRepository) CountForList(ctx context.Context, listID int64) (int64, error) {
	count, err := r.ReadQueries().CountItemsForList(ctx, listID)
	if err != nil {
		return 0, fmt.Errorf("count items for list %d: %w", listID, err)
	}
	return count, nil
}

func toDomainItem(row db.Item) *todo.Item {
	return &todo.Item{
		ID:     row.ID,
		Text:   row.Text,
		ListID: row.ListID,
	}
}
