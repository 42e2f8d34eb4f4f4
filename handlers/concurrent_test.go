// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/calebhsu/retroboard/middleware"
	"github.com/calebhsu/retroboard/models"
	"github.com/calebhsu/retroboard/testutil"
)

// TestConcurrentEntryCreation verifies that simultaneous entry submissions
// from different participants all land without corrupting the snapshot
func TestConcurrentEntryCreation(t *testing.T) {
	st := testutil.NewTestStore(t)
	entryHandler := NewEntryHandler(st)
	sessionHandler := NewSessionHandler(st)

	slug, _ := testutil.CreateTestSession(t, st, "Busy Retro", "Dana")

	numParticipants := 10
	tokens := make([]string, numParticipants)
	for i := 0; i < numParticipants; i++ {
		tokens[i] = testutil.JoinTestSession(t, st, slug, fmt.Sprintf("Writer%d", i))
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numParticipants; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			entryReq := models.CreateEntryRequest{
				Type:    models.TypeWentRight,
				Content: fmt.Sprintf("observation %d", idx),
			}
			body, _ := json.Marshal(entryReq)
			req := httptest.NewRequest("POST", "/sessions/"+slug+"/entries", bytes.NewReader(body))
			req.SetPathValue("slug", slug)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(middleware.ParticipantTokenHeader, tokens[idx])
			w := httptest.NewRecorder()

			entryHandler.CreateEntry(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numParticipants {
		t.Errorf("Expected %d successful submissions, got %d", numParticipants, successCount.Load())
	}

	// The snapshot should hold exactly one entry per participant
	req := httptest.NewRequest("GET", "/sessions/"+slug, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	sessionHandler.GetState(w, req)

	var state models.SessionState
	json.NewDecoder(w.Body).Decode(&state)

	if len(state.Entries) != numParticipants {
		t.Errorf("Expected %d entries in state, got %d", numParticipants, len(state.Entries))
	}

	seen := make(map[string]bool)
	for _, e := range state.Entries {
		if seen[e.ID] {
			t.Errorf("Duplicate entry ID %s", e.ID)
		}
		seen[e.ID] = true
	}
}

// TestConcurrentVoteLimit verifies that a participant firing votes at many
// entries concurrently still stops at the cap
func TestConcurrentVoteLimit(t *testing.T) {
	st := testutil.NewTestStore(t)
	votingHandler := NewVotingHandler(st)

	slug, token := testutil.CreateTestSession(t, st, "Vote Rush", "Dana")

	numEntries := 12
	entryIDs := make([]string, numEntries)
	for i := 0; i < numEntries; i++ {
		entry := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentWrong, fmt.Sprintf("issue %d", i))
		entryIDs[i] = entry.ID
	}

	var successCount atomic.Int32
	var limitCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numEntries; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := httptest.NewRequest("POST", "/sessions/"+slug+"/entries/"+entryIDs[idx]+"/votes", nil)
			req.SetPathValue("slug", slug)
			req.SetPathValue("id", entryIDs[idx])
			req.Header.Set(middleware.ParticipantTokenHeader, token)
			w := httptest.NewRecorder()

			votingHandler.AddVote(w, req)

			switch w.Code {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusConflict:
				limitCount.Add(1)
			default:
				t.Errorf("Unexpected status %d: %s", w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != models.VoteLimit {
		t.Errorf("Expected exactly %d accepted votes, got %d", models.VoteLimit, successCount.Load())
	}
	if int(limitCount.Load()) != numEntries-models.VoteLimit {
		t.Errorf("Expected %d limit rejections, got %d", numEntries-models.VoteLimit, limitCount.Load())
	}

	// Persisted state agrees with the cap
	state, err := st.SessionState(context.Background(), slug, token)
	if err != nil {
		t.Fatalf("SessionState: %v", err)
	}
	if state.Viewer == nil || state.Viewer.VotesUsed != models.VoteLimit {
		t.Errorf("Viewer votes used = %+v, want %d", state.Viewer, models.VoteLimit)
	}
}
