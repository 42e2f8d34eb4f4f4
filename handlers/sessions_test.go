// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calebhsu/retroboard/middleware"
	"github.com/calebhsu/retroboard/models"
	"github.com/calebhsu/retroboard/testutil"
)

func TestCreateSessionHandler(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewSessionHandler(st)

	req := testutil.MakeRequest("POST", "/sessions", models.CreateSessionRequest{
		Title:     "Sprint 14 Retro",
		AdminName: "Owner",
	}, nil)
	w := httptest.NewRecorder()

	handler.CreateSession(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateSessionResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Token == "" {
		t.Error("response missing token")
	}
	if resp.Session.Slug == "" {
		t.Error("response missing slug")
	}
	if resp.Session.Phase != models.PhaseCollecting {
		t.Errorf("phase = %q, want %q", resp.Session.Phase, models.PhaseCollecting)
	}
}

func TestCreateSessionHandlerValidation(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewSessionHandler(st)

	tests := []struct {
		name string
		body models.CreateSessionRequest
	}{
		{"missing title", models.CreateSessionRequest{AdminName: "Owner"}},
		{"missing admin name", models.CreateSessionRequest{Title: "Retro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/sessions", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreateSession(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestJoinSessionHandler(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewSessionHandler(st)

	slug, _ := testutil.CreateTestSession(t, st, "Retro", "Owner")

	req := testutil.MakeRequest("POST", "/sessions/"+slug+"/join", models.JoinSessionRequest{Name: "Alice"}, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()

	handler.JoinSession(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.JoinSessionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Participant.IsAdmin {
		t.Error("joined participant must not be admin")
	}
	if resp.Token == "" {
		t.Error("response missing token")
	}
}

func TestJoinSessionHandlerNotFound(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewSessionHandler(st)

	req := testutil.MakeRequest("POST", "/sessions/missing/join", models.JoinSessionRequest{Name: "Alice"}, nil)
	req.SetPathValue("slug", "missing")
	w := httptest.NewRecorder()

	handler.JoinSession(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetStateHandler(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewSessionHandler(st)

	slug, adminToken := testutil.CreateTestSession(t, st, "Retro", "Owner")
	testutil.JoinTestSession(t, st, slug, "Alice")

	// Authenticated view
	req := testutil.MakeRequest("GET", "/sessions/"+slug, nil, map[string]string{
		middleware.ParticipantTokenHeader: adminToken,
	})
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()

	handler.GetState(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var state models.SessionState
	testutil.AssertJSON(t, w, &state)
	if len(state.Participants) != 2 {
		t.Errorf("participants = %d, want 2", len(state.Participants))
	}
	if state.Viewer == nil || !state.Viewer.IsAdmin {
		t.Error("authenticated viewer should be the admin")
	}

	// Anonymous view: still 200
	req = testutil.MakeRequest("GET", "/sessions/"+slug, nil, nil)
	req.SetPathValue("slug", slug)
	w = httptest.NewRecorder()

	handler.GetState(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var anon models.SessionState
	testutil.AssertJSON(t, w, &anon)
	if anon.Viewer != nil {
		t.Error("anonymous view should have no viewer")
	}
}
