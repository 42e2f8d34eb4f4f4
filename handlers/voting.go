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

type VotingHandler struct {
	store *store.Store
}

func NewVotingHandler(st *store.Store) *VotingHandler {
	return &VotingHandler{store: st}
}

// AddVote handles POST /sessions/{slug}/entries/{id}/votes
func (h *VotingHandler) AddVote(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	entryID := r.PathValue("id")

	vote, err := h.store.AddVote(r.Context(), slug, middleware.ParticipantToken(r), entryID)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("vote added", "slug", slug, "entry_id", entryID, "vote_id", vote.ID)

	middleware.JSONResponse(w, http.StatusCreated, vote)
}

// RemoveVote handles DELETE /sessions/{slug}/entries/{id}/votes
func (h *VotingHandler) RemoveVote(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	entryID := r.PathValue("id")

	if err := h.store.RemoveVote(r.Context(), slug, middleware.ParticipantToken(r), entryID); err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("vote removed", "slug", slug, "entry_id", entryID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// UpsertHappiness handles PUT /sessions/{slug}/happiness
func (h *VotingHandler) UpsertHappiness(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var req models.HappinessRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Score < 1 || req.Score > 10 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "score must be between 1 and 10")
		return
	}

	check, err := h.store.UpsertHappiness(r.Context(), slug, middleware.ParticipantToken(r), req.Score)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, check)
}
