// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calebhsu/retroboard/middleware"
	"github.com/calebhsu/retroboard/models"
	"github.com/calebhsu/retroboard/testutil"
)

func TestAddVoteHandler(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	slug, token := testutil.CreateTestSession(t, st, "Retro", "Owner")
	entry := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "pairing worked")

	req := testutil.MakeRequest("POST", "/sessions/"+slug+"/entries/"+entry.ID+"/votes", nil, map[string]string{
		middleware.ParticipantTokenHeader: token,
	})
	req.SetPathValue("slug", slug)
	req.SetPathValue("id", entry.ID)
	w := httptest.NewRecorder()

	handler.AddVote(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var vote models.Vote
	testutil.AssertJSON(t, w, &vote)
	if vote.EntryID != entry.ID {
		t.Errorf("vote entry = %q, want %q", vote.EntryID, entry.ID)
	}
}

func TestAddVoteHandlerRequiresToken(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	slug, token := testutil.CreateTestSession(t, st, "Retro", "Owner")
	entry := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "pairing worked")

	req := testutil.MakeRequest("POST", "/sessions/"+slug+"/entries/"+entry.ID+"/votes", nil, nil)
	req.SetPathValue("slug", slug)
	req.SetPathValue("id", entry.ID)
	w := httptest.NewRecorder()

	handler.AddVote(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestAddVoteHandlerLimit(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	slug, token := testutil.CreateTestSession(t, st, "Retro", "Owner")

	var lastEntry models.Entry
	for i := 0; i <= models.VoteLimit; i++ {
		lastEntry = testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, fmt.Sprintf("entry %d", i))
		if i == models.VoteLimit {
			break
		}

		req := testutil.MakeRequest("POST", "/votes", nil, map[string]string{
			middleware.ParticipantTokenHeader: token,
		})
		req.SetPathValue("slug", slug)
		req.SetPathValue("id", lastEntry.ID)
		w := httptest.NewRecorder()
		handler.AddVote(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	// Sixth vote: 409
	req := testutil.MakeRequest("POST", "/votes", nil, map[string]string{
		middleware.ParticipantTokenHeader: token,
	})
	req.SetPathValue("slug", slug)
	req.SetPathValue("id", lastEntry.ID)
	w := httptest.NewRecorder()
	handler.AddVote(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestRemoveVoteHandlerNotFound(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	slug, token := testutil.CreateTestSession(t, st, "Retro", "Owner")
	entry := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "never voted")

	req := testutil.MakeRequest("DELETE", "/votes", nil, map[string]string{
		middleware.ParticipantTokenHeader: token,
	})
	req.SetPathValue("slug", slug)
	req.SetPathValue("id", entry.ID)
	w := httptest.NewRecorder()

	handler.RemoveVote(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpsertHappinessHandler(t *testing.T) {
	st := testutil.NewTestStore(t)
	handler := NewVotingHandler(st)

	slug, token := testutil.CreateTestSession(t, st, "Retro", "Owner")

	tests := []struct {
		name   string
		score  int
		status int
	}{
		{"valid score", 8, http.StatusOK},
		{"too low", 0, http.StatusBadRequest},
		{"too high", 11, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/happiness", models.HappinessRequest{Score: tt.score}, map[string]string{
				middleware.ParticipantTokenHeader: token,
			})
			req.SetPathValue("slug", slug)
			w := httptest.NewRecorder()

			handler.UpsertHappiness(w, req)
			testutil.AssertStatus(t, w, tt.status)
		})
	}
}
