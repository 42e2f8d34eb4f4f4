// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"
	"time"

	"github.com/calebhsu/retroboard/auth"
	"github.com/calebhsu/retroboard/models"
)

// Store owns all authoritative session state. Every mutation funnels
// through WithLock, which serializes read-modify-write sequences against
// the snapshot process-wide. Reads are not serialized against writes; the
// backend guarantees they never observe a torn document.
type Store struct {
	backend Backend
	mu      sync.Mutex
	secret  string
	ttl     time.Duration
}

// New creates a store over the given backend. secret signs participant
// tokens; ttl of zero means the default token lifetime.
func New(backend Backend, secret string, ttl time.Duration) *Store {
	if ttl == 0 {
		ttl = auth.DefaultTTL
	}
	return &Store{backend: backend, secret: secret, ttl: ttl}
}

// ReadSnapshot loads the current snapshot without taking the write lock.
func (st *Store) ReadSnapshot(ctx context.Context) (*Snapshot, error) {
	return st.backend.Load(ctx)
}

// WithLock runs fn against the current snapshot and persists the result.
// It is the sole mutation entry point: a second call does not begin its
// read until the previous call's write has completed. If fn returns an
// error the in-memory mutation is discarded and the durable snapshot is
// left unchanged.
func (st *Store) WithLock(ctx context.Context, fn func(*Snapshot) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	snap, err := st.backend.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return st.backend.Save(ctx, snap)
}

// session looks up a session by slug inside a snapshot.
func (st *Store) session(snap *Snapshot, slug string) (*models.Session, error) {
	session := snap.SessionBySlug(slug)
	if session == nil {
		return nil, errNotFound("session not found")
	}
	return session, nil
}

// authenticate verifies a token and resolves it to a participant of the
// given session.
func (st *Store) authenticate(snap *Snapshot, session *models.Session, token string) (*models.Participant, error) {
	if token == "" {
		return nil, errUnauthorized("participant token required")
	}

	claims, err := auth.VerifyToken(token, st.secret)
	if err == auth.ErrTokenExpired {
		return nil, errTokenExpired("participant token expired")
	}
	if err != nil {
		return nil, errUnauthorized("invalid participant token")
	}

	participant := snap.Participants[claims.ParticipantID]
	if participant == nil || participant.SessionID != session.ID || claims.SessionID != session.ID {
		return nil, errUnauthorized("token does not belong to this session")
	}
	return participant, nil
}
