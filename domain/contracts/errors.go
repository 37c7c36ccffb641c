package contracts

import "errors"

// Common errors for domain contracts
var (
	// ErrListNotFound occurs when no list exists for the requested id
	ErrListNotFound = errors.New("list not found")
)
