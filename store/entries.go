// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calebhsu/retroboard/models"
)

// CreateEntry adds a went_right/went_wrong entry authored by the caller.
func (st *Store) CreateEntry(ctx context.Context, slug, token, entryType, content string) (models.Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Entry{}, errValidation("content is required")
	}
	if !models.ValidEntryType(entryType) {
		return models.Entry{}, errValidation("type must be went_right or went_wrong")
	}

	var result models.Entry
	err := st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		participant, err := st.authenticate(snap, session, token)
		if err != nil {
			return err
		}

		entry := &models.Entry{
			ID:        uuid.NewString(),
			SessionID: session.ID,
			AuthorID:  participant.ID,
			Type:      entryType,
			Content:   content,
			CreatedAt: time.Now(),
		}
		snap.Entries[entry.ID] = entry
		touch(session)

		result = *entry
		return nil
	})
	if err != nil {
		return models.Entry{}, err
	}
	return result, nil
}

// UpdateEntry replaces an entry's content. Author or admin only.
func (st *Store) UpdateEntry(ctx context.Context, slug, token, entryID, content string) (models.Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Entry{}, errValidation("content is required")
	}

	var result models.Entry
	err := st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		participant, err := st.authenticate(snap, session, token)
		if err != nil {
			return err
		}

		entry, err := sessionEntry(snap, session.ID, entryID)
		if err != nil {
			return err
		}
		if entry.AuthorID != participant.ID && !participant.IsAdmin {
			return errForbidden("only the author or the admin may edit an entry")
		}

		entry.Content = content
		touch(session)

		result = *entry
		return nil
	})
	if err != nil {
		return models.Entry{}, err
	}
	return result, nil
}

// DeleteEntry removes an entry. Author or admin only. Cascades: the entry's
// votes are deleted, and if the entry was grouped the group is cleaned up.
func (st *Store) DeleteEntry(ctx context.Context, slug, token, entryID string) error {
	return st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		participant, err := st.authenticate(snap, session, token)
		if err != nil {
			return err
		}

		entry, err := sessionEntry(snap, session.ID, entryID)
		if err != nil {
			return err
		}
		if entry.AuthorID != participant.ID && !participant.IsAdmin {
			return errForbidden("only the author or the admin may delete an entry")
		}

		snap.deleteEntryVotes(entry.ID)
		groupID := entry.GroupID
		delete(snap.Entries, entry.ID)
		if groupID != nil {
			snap.cleanupGroup(*groupID)
		}
		touch(session)
		return nil
	})
}

// MoveEntry changes an entry's type, detaching it from any group first.
// Any participant may move entries.
func (st *Store) MoveEntry(ctx context.Context, slug, token, entryID, newType string) (models.Entry, error) {
	if !models.ValidEntryType(newType) {
		return models.Entry{}, errValidation("type must be went_right or went_wrong")
	}

	var result models.Entry
	err := st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		if _, err := st.authenticate(snap, session, token); err != nil {
			return err
		}

		entry, err := sessionEntry(snap, session.ID, entryID)
		if err != nil {
			return err
		}

		snap.detachEntry(entry)
		entry.Type = newType
		touch(session)

		result = *entry
		return nil
	})
	if err != nil {
		return models.Entry{}, err
	}
	return result, nil
}

// ClearEntries deletes all entries, groups, and votes in the session in one
// atomic step. Admin only.
func (st *Store) ClearEntries(ctx context.Context, slug, token string) error {
	return st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		participant, err := st.authenticate(snap, session, token)
		if err != nil {
			return err
		}
		if !participant.IsAdmin {
			return errForbidden("only the admin may clear the board")
		}

		for id, e := range snap.Entries {
			if e.SessionID == session.ID {
				delete(snap.Entries, id)
			}
		}
		for id, g := range snap.Groups {
			if g.SessionID == session.ID {
				delete(snap.Groups, id)
			}
		}
		for id, v := range snap.Votes {
			if v.SessionID == session.ID {
				delete(snap.Votes, id)
			}
		}
		touch(session)
		return nil
	})
}

// sessionEntry finds an entry and checks it belongs to the session.
func sessionEntry(snap *Snapshot, sessionID, entryID string) (*models.Entry, error) {
	entry := snap.Entries[entryID]
	if entry == nil || entry.SessionID != sessionID {
		return nil, errNotFound("entry not found")
	}
	return entry, nil
}
