// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the API.

Handlers are thin: they parse and validate JSON at the boundary, read the
x-participant-token header, call exactly one store operation, and translate
the result (or its typed error) to a transport response. All permission and
invariant checks live in the store.

# Handler Groups

  - SessionHandler: create, join, read the aggregated board state
  - EntryHandler: create/update/delete/move entries, clear the board
  - VotingHandler: add/remove votes, happiness checks
  - GroupHandler: create groups, attach/detach entries
  - AdminHandler: action items and navigation

# Authentication

Mutating handlers pass the raw token through to the store, which resolves
it to a participant of the session or fails with Unauthorized. GetState
treats the token as optional and serves an anonymous view without one.
*/
package handlers
