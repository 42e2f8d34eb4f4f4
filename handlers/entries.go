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

type EntryHandler struct {
	store *store.Store
}

func NewEntryHandler(st *store.Store) *EntryHandler {
	return &EntryHandler{store: st}
}

// CreateEntry handles POST /sessions/{slug}/entries
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var req models.CreateEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidEntryType(req.Type) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "type must be went_right or went_wrong")
		return
	}
	if req.Content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	entry, err := h.store.CreateEntry(r.Context(), slug, middleware.ParticipantToken(r), req.Type, req.Content)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("entry created", "slug", slug, "entry_id", entry.ID, "type", entry.Type)

	middleware.JSONResponse(w, http.StatusCreated, entry)
}

// UpdateEntry handles PUT /sessions/{slug}/entries/{id}
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	entryID := r.PathValue("id")

	var req models.UpdateEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	entry, err := h.store.UpdateEntry(r.Context(), slug, middleware.ParticipantToken(r), entryID, req.Content)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// DeleteEntry handles DELETE /sessions/{slug}/entries/{id}
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	entryID := r.PathValue("id")

	if err := h.store.DeleteEntry(r.Context(), slug, middleware.ParticipantToken(r), entryID); err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("entry deleted", "slug", slug, "entry_id", entryID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// MoveEntry handles POST /sessions/{slug}/entries/{id}/move
func (h *EntryHandler) MoveEntry(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	entryID := r.PathValue("id")

	var req models.MoveEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidEntryType(req.Type) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "type must be went_right or went_wrong")
		return
	}

	entry, err := h.store.MoveEntry(r.Context(), slug, middleware.ParticipantToken(r), entryID, req.Type)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// ClearEntries handles DELETE /sessions/{slug}/entries
func (h *EntryHandler) ClearEntries(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	if err := h.store.ClearEntries(r.Context(), slug, middleware.ParticipantToken(r)); err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("board cleared", "slug", slug)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
