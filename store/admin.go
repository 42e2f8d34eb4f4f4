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

// CreateActionItem records a follow-up item. Admin only.
func (st *Store) CreateActionItem(ctx context.Context, slug, token, content string) (models.ActionItem, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.ActionItem{}, errValidation("content is required")
	}

	var result models.ActionItem
	err := st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		participant, err := st.authenticate(snap, session, token)
		if err != nil {
			return err
		}
		if !participant.IsAdmin {
			return errForbidden("only the admin may create action items")
		}

		item := &models.ActionItem{
			ID:        uuid.NewString(),
			SessionID: session.ID,
			CreatorID: participant.ID,
			Content:   content,
			CreatedAt: time.Now(),
		}
		snap.ActionItems[item.ID] = item
		touch(session)

		result = *item
		return nil
	})
	if err != nil {
		return models.ActionItem{}, err
	}
	return result, nil
}

// DeleteActionItem removes an action item. Admin only.
func (st *Store) DeleteActionItem(ctx context.Context, slug, token, itemID string) error {
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
			return errForbidden("only the admin may delete action items")
		}

		item := snap.ActionItems[itemID]
		if item == nil || item.SessionID != session.ID {
			return errNotFound("action item not found")
		}

		delete(snap.ActionItems, item.ID)
		touch(session)
		return nil
	})
}

// UpsertHappiness records the caller's 1-10 happiness score, updating in
// place on resubmission. At most one check per participant per session.
func (st *Store) UpsertHappiness(ctx context.Context, slug, token string, score int) (models.HappinessCheck, error) {
	if score < 1 || score > 10 {
		return models.HappinessCheck{}, errValidation("score must be between 1 and 10")
	}

	var result models.HappinessCheck
	err := st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		participant, err := st.authenticate(snap, session, token)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, check := range snap.HappinessChecks {
			if check.SessionID == session.ID && check.ParticipantID == participant.ID {
				check.Score = score
				check.UpdatedAt = now
				touch(session)
				result = *check
				return nil
			}
		}

		check := &models.HappinessCheck{
			ID:            uuid.NewString(),
			SessionID:     session.ID,
			ParticipantID: participant.ID,
			Score:         score,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		snap.HappinessChecks[check.ID] = check
		touch(session)

		result = *check
		return nil
	})
	if err != nil {
		return models.HappinessCheck{}, err
	}
	return result, nil
}

// SetNavigation moves the session to a new shared stage and derives the
// session phase from it. Admin only.
func (st *Store) SetNavigation(ctx context.Context, slug, token, activeSection string, discussionEntryID *string) (models.NavigationState, error) {
	if !models.ValidSection(activeSection) {
		return models.NavigationState{}, errValidation("unknown section")
	}

	var result models.NavigationState
	err := st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		participant, err := st.authenticate(snap, session, token)
		if err != nil {
			return err
		}
		if !participant.IsAdmin {
			return errForbidden("only the admin may change navigation")
		}

		if discussionEntryID != nil {
			if _, err := sessionEntry(snap, session.ID, *discussionEntryID); err != nil {
				return err
			}
		}

		now := time.Now()
		nav := snap.Navigation[session.ID]
		if nav == nil {
			nav = defaultNavigation(session.ID, now)
			snap.Navigation[session.ID] = nav
		}
		nav.ActiveSection = activeSection
		nav.DiscussionEntryID = discussionEntryID
		nav.UpdatedAt = now

		session.Phase = models.PhaseForSection(activeSection)
		touch(session)

		result = *nav
		return nil
	})
	if err != nil {
		return models.NavigationState{}, err
	}
	return result, nil
}
