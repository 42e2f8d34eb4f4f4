// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Backend is durable storage for the full snapshot.
type Backend interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

const (
	readRetries    = 5
	readRetryDelay = 20 * time.Millisecond
)

// FileBackend persists the snapshot as a single JSON document on disk.
// Writes replace the file atomically (temp file + rename), so a reader
// never sees a half-written document through the filesystem. A reader that
// still hits malformed JSON is assumed to be racing a writer and retries a
// bounded number of times before giving up.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend storing the snapshot at path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the snapshot document. On first-ever access it materializes an
// empty snapshot and persists it.
func (b *FileBackend) Load(ctx context.Context) (*Snapshot, error) {
	var lastErr error

	for attempt := 0; attempt < readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(readRetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		raw, err := os.ReadFile(b.path)
		if errors.Is(err, os.ErrNotExist) {
			snap := NewSnapshot()
			if err := b.Save(ctx, snap); err != nil {
				return nil, err
			}
			return snap, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot: %w", err)
		}

		var snap Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			if transientParseError(err) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("corrupt snapshot at %s: %w", b.path, err)
		}

		snap.normalize()
		return &snap, nil
	}

	return nil, fmt.Errorf("snapshot still unreadable after %d attempts: %w", readRetries, lastErr)
}

// Save writes the snapshot to a temp file in the same directory and renames
// it over the target, so concurrent readers only ever see complete documents.
func (b *FileBackend) Save(ctx context.Context, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

// transientParseError reports whether a decode failure looks like a torn
// read racing a writer, rather than genuine corruption.
func transientParseError(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF)
}
