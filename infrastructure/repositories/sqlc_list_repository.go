package repositories

import (
	"context"
	"fmt"

	"superlists/database"
	"superlists/domain/contracts"
	"superlists/domain/todo"
	"superlists/gen/db"
)

// SqlcListRepository implements contracts.ListRepository using sqlc queries with read/write separation.
type SqlcListRepository struct {
	*BaseRepository
}

// NewSqlcListRepository creates a new list repository with read/write database separation.
func NewSqlcListRepository(database *database.Database) contracts.ListRepository {
	return &SqlcListRepository{
		BaseRepository: NewBaseRepository(database),
	}
}

// CreateWithFirstItem persists a list and its first item atomically.
func (r *SqlcListRepository) CreateWithFirstItem(ctx context.Context, text string) (*todo.List, *todo.Item, error) {
	var list *todo.List
	var item *todo.Item

	err := r.WithTx(ctx, func(q *db.Queries) error {
		listID, err := q.CreateList(ctx)
		if err != nil {
			return fmt.Errorf("create list: %w", err)
		}

		row, err := q.InsertItem(ctx, db.InsertItemParams{Text: text, ListID: listID})
		if err != nil {
			return fmt.Errorf("insert first item: %w", err)
		}

		list = &todo.List{ID: listID}
		item = toDomainItem(row)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return list, item, nil
}

// GetByID retrieves a list by its ID.
func (r *SqlcListRepository) GetByID(ctx context.Context, listID int64) (*todo.List, error) {
	id, err := r.ReadQueries().GetList(ctx, listID)
	if err != nil {
		return nil, listLookupError(listID, err)
	}
	return &todo.List{ID: id}, nil
}
