package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"superlists/domain/contracts"
)

// listLookupError translates a missing row into contracts.ErrListNotFound.
func listLookupError(listID int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("list %d: %w", listID, contracts.ErrListNotFound)
	}
	return fmt.Errorf("get list %d: %w", listID, err)
}
