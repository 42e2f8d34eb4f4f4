// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// SQLBackend persists the snapshot as a single-row JSON document in a
// relational database, using transactions for the same atomicity the file
// backend gets from rename. Works with both the sqlite and postgres
// drivers. Unlike the file path, a relational read can never be torn, so
// malformed JSON here is always fatal.
type SQLBackend struct {
	db *sql.DB
}

// NewSQLBackend creates a SQL backend over an open database handle. The
// schema must already exist (db.CreateSchema).
func NewSQLBackend(db *sql.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

// Load reads the snapshot row, materializing and persisting an empty
// snapshot on first access.
func (b *SQLBackend) Load(ctx context.Context) (*Snapshot, error) {
	var raw []byte
	err := b.db.QueryRowContext(ctx, `SELECT document FROM snapshot WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		snap := NewSnapshot()
		if err := b.Save(ctx, snap); err != nil {
			return nil, err
		}
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot row: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("corrupt snapshot document: %w", err)
	}
	snap.normalize()
	return &snap, nil
}

// Save replaces the snapshot row inside one transaction.
func (b *SQLBackend) Save(ctx context.Context, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear snapshot row: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot (id, document, updated_at)
		VALUES (1, $1, $2)
	`, raw, time.Now()); err != nil {
		return fmt.Errorf("failed to write snapshot row: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
