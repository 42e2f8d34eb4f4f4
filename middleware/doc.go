// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request logging, CORS, and JSON helpers.

# Helpers

  - WithLogging: wraps a handler with start/completion slog lines
  - CORS: allows cross-origin requests from the frontend
  - JSONResponse / ErrorResponse: JSON encoding helpers
  - StoreErrorResponse: maps typed store errors to transport statuses
    (Unauthorized/TokenExpired 401, Forbidden 403, NotFound 404,
    Conflict/VoteLimit 409, Validation 400, anything else 500)
  - ParseJSONBody: decodes a request body
  - ParticipantToken: reads the x-participant-token header
*/
package middleware
