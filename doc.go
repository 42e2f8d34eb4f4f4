// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Retroboard API server.

Retroboard is a collaborative sprint-retrospective service: participants
create or join a session by slug, post went-right/went-wrong entries, vote
(five per person), merge related entries into groups, and move through
discussion, happiness check, and summary stages under admin control.
Clients poll the aggregated session state; there is no push channel.

# Starting the Server

The server runs on a JSON snapshot file by default:

	go run . -f retroboard.json

Or against a database:

	DATABASE_URL="postgres://..." DATABASE_TYPE=postgres go run .

# Configuration

Settings (flags or environment, see package cliparse):

  - PORT (-p): server port (default: 4410)
  - DATA_FILE (-f): snapshot file path (default: retroboard.json)
  - DATABASE_URL (-d): SQL connection string (sqlite path or postgres URL)
  - DATABASE_TYPE (-t): sqlite or postgres
  - TOKEN_SECRET (--token-secret): participant token signing secret
  - TOKEN_TTL_HOURS (--token-ttl): token lifetime (default 12)

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: the session store - snapshot persistence, write serialization,
    domain operations, and the read model
  - handlers: HTTP request handlers (sessions, entries, voting, groups, admin)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, error mapping
  - models: domain, request/response, and read-model types
  - auth: participant token issue/verify
  - db: schema creation for the SQL backend
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
