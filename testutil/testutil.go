// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/calebhsu/retroboard/models"
	"github.com/calebhsu/retroboard/store"
)

// TestSecret signs participant tokens in tests.
const TestSecret = "test-token-secret"

// NewTestStore creates a store over a fresh file backend in a temp dir.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	return store.New(store.NewFileBackend(path), TestSecret, time.Hour)
}

// CreateTestSession creates a session and returns its slug and the admin
// token.
func CreateTestSession(t *testing.T, st *store.Store, title, adminName string) (slug, adminToken string) {
	t.Helper()

	created, err := st.CreateSession(context.Background(), title, "", adminName)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return created.Session.Slug, created.Token
}

// JoinTestSession joins a session and returns the participant token.
func JoinTestSession(t *testing.T, st *store.Store, slug, name string) string {
	t.Helper()

	joined, err := st.JoinSession(context.Background(), slug, name)
	if err != nil {
		t.Fatalf("Failed to join test session: %v", err)
	}
	return joined.Token
}

// CreateTestEntry adds an entry authored by the token's participant.
func CreateTestEntry(t *testing.T, st *store.Store, slug, token, entryType, content string) models.Entry {
	t.Helper()

	entry, err := st.CreateEntry(context.Background(), slug, token, entryType, content)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}
	return entry
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
