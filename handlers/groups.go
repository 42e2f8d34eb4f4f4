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

type GroupHandler struct {
	store *store.Store
}

func NewGroupHandler(st *store.Store) *GroupHandler {
	return &GroupHandler{store: st}
}

// CreateGroup handles POST /sessions/{slug}/groups
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var req models.CreateGroupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SourceEntryID == "" || req.TargetEntryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "source_entry_id and target_entry_id are required")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	group, err := h.store.CreateGroup(r.Context(), slug, middleware.ParticipantToken(r), req.SourceEntryID, req.TargetEntryID, req.Name)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("group created", "slug", slug, "group_id", group.ID, "name", group.Name)

	middleware.JSONResponse(w, http.StatusCreated, group)
}

// AddEntry handles POST /sessions/{slug}/groups/{id}/entries
func (h *GroupHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	groupID := r.PathValue("id")

	var req models.AddToGroupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.EntryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entry_id is required")
		return
	}

	if err := h.store.AddEntryToGroup(r.Context(), slug, middleware.ParticipantToken(r), groupID, req.EntryID); err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// UngroupEntry handles DELETE /sessions/{slug}/entries/{id}/group
func (h *GroupHandler) UngroupEntry(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	entryID := r.PathValue("id")

	if err := h.store.UngroupEntry(r.Context(), slug, middleware.ParticipantToken(r), entryID); err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
