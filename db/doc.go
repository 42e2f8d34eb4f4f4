// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the database schema for the SQL persistence backend.

The schema is a single snapshot table holding the full data set as one JSON
document. Both sqlite (modernc.org/sqlite) and PostgreSQL (github.com/lib/pq)
are supported; the statements stick to syntax both accept.

# Usage

	dbConn, _ := sql.Open("sqlite", "retroboard.db")
	if err := db.CreateSchema(dbConn); err != nil {
		// handle error
	}

CreateSchema is idempotent - it uses IF NOT EXISTS and is safe to call on
every startup.
*/
package db
