// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/calebhsu/retroboard/handlers"
	"github.com/calebhsu/retroboard/middleware"
	"github.com/calebhsu/retroboard/store"
)

func NewRouter(st *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(st)
	entryHandler := handlers.NewEntryHandler(st)
	votingHandler := handlers.NewVotingHandler(st)
	groupHandler := handlers.NewGroupHandler(st)
	adminHandler := handlers.NewAdminHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session lifecycle
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("POST /sessions/{slug}/join", middleware.WithLogging(sessionHandler.JoinSession))
	mux.HandleFunc("GET /sessions/{slug}", middleware.WithLogging(sessionHandler.GetState))

	// Entries
	mux.HandleFunc("POST /sessions/{slug}/entries", middleware.WithLogging(entryHandler.CreateEntry))
	mux.HandleFunc("DELETE /sessions/{slug}/entries", middleware.WithLogging(entryHandler.ClearEntries))
	mux.HandleFunc("PUT /sessions/{slug}/entries/{id}", middleware.WithLogging(entryHandler.UpdateEntry))
	mux.HandleFunc("DELETE /sessions/{slug}/entries/{id}", middleware.WithLogging(entryHandler.DeleteEntry))
	mux.HandleFunc("POST /sessions/{slug}/entries/{id}/move", middleware.WithLogging(entryHandler.MoveEntry))

	// Votes
	mux.HandleFunc("POST /sessions/{slug}/entries/{id}/votes", middleware.WithLogging(votingHandler.AddVote))
	mux.HandleFunc("DELETE /sessions/{slug}/entries/{id}/votes", middleware.WithLogging(votingHandler.RemoveVote))

	// Groups
	mux.HandleFunc("POST /sessions/{slug}/groups", middleware.WithLogging(groupHandler.CreateGroup))
	mux.HandleFunc("POST /sessions/{slug}/groups/{id}/entries", middleware.WithLogging(groupHandler.AddEntry))
	mux.HandleFunc("DELETE /sessions/{slug}/entries/{id}/group", middleware.WithLogging(groupHandler.UngroupEntry))

	// Action items, happiness, navigation
	mux.HandleFunc("POST /sessions/{slug}/action-items", middleware.WithLogging(adminHandler.CreateActionItem))
	mux.HandleFunc("DELETE /sessions/{slug}/action-items/{id}", middleware.WithLogging(adminHandler.DeleteActionItem))
	mux.HandleFunc("PUT /sessions/{slug}/happiness", middleware.WithLogging(votingHandler.UpsertHappiness))
	mux.HandleFunc("PUT /sessions/{slug}/navigation", middleware.WithLogging(adminHandler.SetNavigation))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("retroboard API v1"))
	})

	return mux
}
