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

// CreateGroup merges exactly two previously ungrouped entries of the same
// type into a new named group.
func (st *Store) CreateGroup(ctx context.Context, slug, token, sourceEntryID, targetEntryID, name string) (models.EntryGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.EntryGroup{}, errValidation("name is required")
	}
	if sourceEntryID == targetEntryID {
		return models.EntryGroup{}, errValidation("cannot group an entry with itself")
	}

	var result models.EntryGroup
	err := st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		if _, err := st.authenticate(snap, session, token); err != nil {
			return err
		}

		source, err := sessionEntry(snap, session.ID, sourceEntryID)
		if err != nil {
			return err
		}
		target, err := sessionEntry(snap, session.ID, targetEntryID)
		if err != nil {
			return err
		}

		if source.GroupID != nil || target.GroupID != nil {
			return errConflict("entry already grouped")
		}
		if source.Type != target.Type {
			return errConflict("entries must be on the same side")
		}

		group := &models.EntryGroup{
			ID:        uuid.NewString(),
			SessionID: session.ID,
			Type:      source.Type,
			Name:      name,
			CreatedAt: time.Now(),
		}
		snap.Groups[group.ID] = group
		source.GroupID = &group.ID
		target.GroupID = &group.ID
		touch(session)

		result = *group
		return nil
	})
	if err != nil {
		return models.EntryGroup{}, err
	}
	return result, nil
}

// AddEntryToGroup attaches an ungrouped entry to an existing group of the
// same type.
func (st *Store) AddEntryToGroup(ctx context.Context, slug, token, groupID, entryID string) error {
	return st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		if _, err := st.authenticate(snap, session, token); err != nil {
			return err
		}

		group := snap.Groups[groupID]
		if group == nil || group.SessionID != session.ID {
			return errNotFound("group not found")
		}
		entry, err := sessionEntry(snap, session.ID, entryID)
		if err != nil {
			return err
		}

		if entry.GroupID != nil {
			return errConflict("entry already grouped")
		}
		if entry.Type != group.Type {
			return errConflict("entry type does not match group")
		}

		entry.GroupID = &group.ID
		touch(session)
		return nil
	})
}

// UngroupEntry removes an entry from its group. If the group drops below
// the minimum size it is deleted and its remaining member detached.
// Ungrouping an already-ungrouped entry is a no-op success.
func (st *Store) UngroupEntry(ctx context.Context, slug, token, entryID string) error {
	return st.WithLock(ctx, func(snap *Snapshot) error {
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
		if entry.GroupID == nil {
			return nil
		}

		snap.detachEntry(entry)
		touch(session)
		return nil
	})
}
