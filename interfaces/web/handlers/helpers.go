package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// extractListID parses the {listID} URL parameter.
func extractListID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "listID")
	if raw == "" {
		return 0, fmt.Errorf("missing list ID")
	}

	listID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || listID <= 0 {
		return 0, fmt.Errorf("invalid list ID: %q", raw)
	}
	return listID, nil
}
