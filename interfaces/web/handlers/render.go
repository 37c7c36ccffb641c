// Package handlers render provides HTTP response utilities.
package handlers

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"superlists/logging"
)

// RenderResponse renders Templ components to HTTP responses with a 200 status.
func RenderResponse(ctx context.Context, w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(ctx, w); err != nil {
		logging.Default().WithContext(ctx).Error("Failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
