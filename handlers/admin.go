// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/calebhsu/retroboard/middleware"
	"github.com/calebhsu/retroboard/models"
	"github.com/calebhsu/retroboard/store"
)

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

// CreateActionItem handles POST /sessions/{slug}/action-items
func (h *AdminHandler) CreateActionItem(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var req models.CreateActionItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	item, err := h.store.CreateActionItem(r.Context(), slug, middleware.ParticipantToken(r), req.Content)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("action item created", "slug", slug, "item_id", item.ID)

	middleware.JSONResponse(w, http.StatusCreated, item)
}

// DeleteActionItem handles DELETE /sessions/{slug}/action-items/{id}
func (h *AdminHandler) DeleteActionItem(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	itemID := r.PathValue("id")

	if err := h.store.DeleteActionItem(r.Context(), slug, middleware.ParticipantToken(r), itemID); err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// SetNavigation handles PUT /sessions/{slug}/navigation
func (h *AdminHandler) SetNavigation(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var req models.NavigationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidSection(req.ActiveSection) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown section")
		return
	}

	nav, err := h.store.SetNavigation(r.Context(), slug, middleware.ParticipantToken(r), req.ActiveSection, req.DiscussionEntryID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("navigation changed", "slug", slug, "section", nav.ActiveSection)

	middleware.JSONResponse(w, http.StatusOK, nav)
}
