// Package todo holds the to-do list domain: lists, their items and the rules around them.
package todo

import "fmt"

// Status comments shown for a list, keyed by how many items it holds.
const (
	CommentRelax = "yey, waktunya berlibur"
	CommentBusy  = "sibuk tapi santai"
	CommentPanic = "oh tidak"
)

// busyThreshold is the item count at which a list stops being relaxed.
const busyThreshold = 5

// List is an identity-only collection of items.
type List struct {
	ID int64
}

// URL returns the canonical page for the list.
func (l *List) URL() string {
	return ListURL(l.ID)
}

// ListURL returns the canonical page for the list with the given id.
func ListURL(id int64) string {
	return fmt.Sprintf("/lists/%d/", id)
}

// StatusComment summarises how busy a list is from its item count.
func StatusComment(itemCount int64) string {
	switch {
	case itemCount <= 0:
		return CommentRelax
	case itemCount < busyThreshold:
		return CommentBusy
	default:
		return CommentPanic
	}
}
