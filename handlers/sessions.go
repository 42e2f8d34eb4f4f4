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

type SessionHandler struct {
	store *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{store: st}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.AdminName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "admin_name is required")
		return
	}

	created, err := h.store.CreateSession(r.Context(), req.Title, req.SprintLabel, req.AdminName)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("session created", "session_id", created.Session.ID, "slug", created.Session.Slug, "admin", req.AdminName)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		Session: created.Session,
		Token:   created.Token,
	})
}

// JoinSession handles POST /sessions/{slug}/join
func (h *SessionHandler) JoinSession(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var req models.JoinSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	joined, err := h.store.JoinSession(r.Context(), slug, req.Name)
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	slog.Info("participant joined", "slug", slug, "participant_id", joined.Participant.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.JoinSessionResponse{
		Participant: joined.Participant,
		Token:       joined.Token,
	})
}

// GetState handles GET /sessions/{slug}
// The participant token is optional; without one the anonymous view is
// returned.
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	state, err := h.store.SessionState(r.Context(), slug, middleware.ParticipantToken(r))
	if err != nil {
		middleware.StoreErrorResponse(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, state)
}
