// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ routing.

# Routes

Session lifecycle (no auth):

	POST /sessions
	POST /sessions/{slug}/join
	GET  /sessions/{slug}          (token optional)

Board mutations (x-participant-token required):

	POST   /sessions/{slug}/entries
	PUT    /sessions/{slug}/entries/{id}
	DELETE /sessions/{slug}/entries/{id}
	DELETE /sessions/{slug}/entries            (admin)
	POST   /sessions/{slug}/entries/{id}/move
	POST   /sessions/{slug}/entries/{id}/votes
	DELETE /sessions/{slug}/entries/{id}/votes
	POST   /sessions/{slug}/groups
	POST   /sessions/{slug}/groups/{id}/entries
	DELETE /sessions/{slug}/entries/{id}/group
	POST   /sessions/{slug}/action-items       (admin)
	DELETE /sessions/{slug}/action-items/{id}  (admin)
	PUT    /sessions/{slug}/happiness
	PUT    /sessions/{slug}/navigation         (admin)

Utility:

	GET /health
	GET /

All routes are wrapped with request logging; CORS is applied to the whole
mux in main.
*/
package router
