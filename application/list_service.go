package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"superlists/domain/contracts"
	"superlists/domain/todo"
	"superlists/logging"
)

// ListWithItemsData is a list together with its items and the derived status comment.
type ListWithItemsData struct {
	List      *todo.List
	Items     []*todo.Item
	ItemCount int64
	Comment   string
}

// ListService handles the to-do list use cases on top of the list and item repositories.
type ListService struct {
	lists  contracts.ListRepository
	items  contracts.ItemRepository
	logger *logging.Logger
}

// NewListService creates a list service with repository dependency injection.
func NewListService(lists contracts.ListRepository, items contracts.ItemRepository) *ListService {
	return &ListService{
		lists:  lists,
		items:  items,
		logger: logging.Default().WithComponent("list_service"),
	}
}

// GetListWithItems loads a list, its items and the comment for its current item count.
// Returns an error wrapping contracts.ErrListNotFound when the list does not exist.
func (s *ListService) GetListWithItems(ctx context.Context, listID int64) (*ListWithItemsData, error) {
	start := time.Now()

	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	count, err := s.items.CountForList(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.GetForList(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Performance("get_list_with_items", time.Since(start),
		slog.Int64("list_id", list.ID),
		slog.Int64("item_count", count))

	return &ListWithItemsData{
		List:      list,
		Items:     items,
		ItemCount: count,
		Comment:   todo.StatusComment(count),
	}, nil
}

// AddItem validates text and appends it to list. A *todo.ValidationError means nothing was stored.
func (s *ListService) AddItem(ctx context.Context, list *todo.List, text string) (*todo.Item, error) {
	item := todo.NewItem(list, text)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("add item to list %d: %w", list.ID, err)
	}

	s.logger.Lists("Item added", list.ID, "item_id", item.ID)
	return item, nil
}

// StartList creates a new list whose first item is text. Validation runs before
// anything is written and both rows are stored in one transaction, so a rejected
// submission never leaves an empty list behind.
func (s *ListService) StartList(ctx context.Context, text string) (*todo.List, error) {
	if err := todo.ValidateItemText(text); err != nil {
		return nil, err
	}

	list, item, err := s.lists.CreateWithFirstItem(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("start list: %w", err)
	}

	s.logger.Lists("List created", list.ID, "item_id", item.ID)
	return list, nil
}
