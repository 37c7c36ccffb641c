package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"superlists/application"
	"superlists/domain/contracts"
	"superlists/domain/todo"
	"superlists/interfaces/web/middleware"
	"superlists/interfaces/web/presenters"
	"superlists/interfaces/web/templates/pages"
	"superlists/logging"
)

// itemTextField is the form field holding a submitted item.
const itemTextField = "item_text"

// ListHandlers handles the home page and list-related HTTP endpoints.
// Orchestrates between the list service and presentation logic.
type ListHandlers struct {
	listService   *application.ListService
	listPresenter *presenters.ListPresenter
	logger        *logging.Logger
}

// NewListHandlers creates a new list handlers instance with required dependencies.
func NewListHandlers(
	listService *application.ListService,
	listPresenter *presenters.ListPresenter,
) *ListHandlers {
	return &ListHandlers{
		listService:   listService,
		listPresenter: listPresenter,
		logger:        logging.Default().WithComponent("list_handler"),
	}
}

// RegisterRoutes mounts the list pages on r.
func (h *ListHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Post("/lists/new", h.NewList)
	r.Get("/lists/{listID:[0-9]+}/", h.ViewList)
	r.Post("/lists/{listID:[0-9]+}/", h.ViewList)
}

// Home renders the landing page with the new-list form.
func (h *ListHandlers) Home(w http.ResponseWriter, r *http.Request) {
	vm := h.listPresenter.ToHomeViewModel("", middleware.FormCSRF(r))
	RenderResponse(r.Context(), w, r, pages.HomePage(*vm))
}

// ViewList renders a list with its status comment. On POST it adds the submitted
// item and redirects back to the list, or re-renders with the validation error.
func (h *ListHandlers) ViewList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, err := extractListID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data, err := h.listService.GetListWithItems(ctx, listID)
	if err != nil {
		h.handleLookupError(w, r, listID, err)
		return
	}

	var errorMessage string
	if r.Method == http.MethodPost {
		_, err := h.listService.AddItem(ctx, data.List, r.PostFormValue(itemTextField))
		if err == nil {
			http.Redirect(w, r, data.List.URL(), http.StatusFound)
			return
		}

		var validationErr *todo.ValidationError
		if !errors.As(err, &validationErr) {
			h.logger.WithContext(ctx).Error("Failed to add item", "list_id", listID, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		errorMessage = validationErr.Message
	}

	vm := h.listPresenter.ToListPageViewModel(data, errorMessage, middleware.FormCSRF(r))
	RenderResponse(ctx, w, r, pages.ListPage(*vm))
}

// NewList starts a list from the submitted first item and redirects to it.
// A rejected item re-renders the home page with the error and stores nothing.
func (h *ListHandlers) NewList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.listService.StartList(ctx, r.PostFormValue(itemTextField))
	if err != nil {
		var validationErr *todo.ValidationError
		if !errors.As(err, &validationErr) {
			h.logger.WithContext(ctx).Error("Failed to start list", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		vm := h.listPresenter.ToHomeViewModel(validationErr.Message, middleware.FormCSRF(r))
		RenderResponse(ctx, w, r, pages.HomePage(*vm))
		return
	}

	http.Redirect(w, r, list.URL(), http.StatusFound)
}

// handleLookupError maps a missing list to 404 and anything else to 500.
func (h *ListHandlers) handleLookupError(w http.ResponseWriter, r *http.Request, listID int64, err error) {
	if errors.Is(err, contracts.ErrListNotFound) {
		http.NotFound(w, r)
		return
	}
	h.logger.WithContext(r.Context()).Error("Failed to load list", "list_id", listID, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
