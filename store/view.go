// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/calebhsu/retroboard/models"
)

// SessionState builds the aggregated, per-viewer view of a session. The
// token is optional: absent or invalid tokens yield an anonymous view, not
// an error. The only mutation this path may perform is persisting the
// default navigation the first time a session is read without one.
func (st *Store) SessionState(ctx context.Context, slug, token string) (models.SessionState, error) {
	snap, err := st.ReadSnapshot(ctx)
	if err != nil {
		return models.SessionState{}, err
	}

	session, err := st.session(snap, slug)
	if err != nil {
		return models.SessionState{}, err
	}

	if snap.Navigation[session.ID] == nil {
		// Lazy-create the default navigation so subsequent reads are stable.
		err := st.WithLock(ctx, func(locked *Snapshot) error {
			lockedSession, err := st.session(locked, slug)
			if err != nil {
				return err
			}
			if locked.Navigation[lockedSession.ID] == nil {
				locked.Navigation[lockedSession.ID] = defaultNavigation(lockedSession.ID, time.Now())
			}
			snap = locked
			session = lockedSession
			return nil
		})
		if err != nil {
			return models.SessionState{}, err
		}
	}

	viewer := st.viewer(snap, session, token)
	return BuildState(snap, session, viewer), nil
}

// viewer resolves an optional token to a participant of the session, or nil
// for the anonymous view.
func (st *Store) viewer(snap *Snapshot, session *models.Session, token string) *models.Participant {
	if token == "" {
		return nil
	}
	participant, err := st.authenticate(snap, session, token)
	if err != nil {
		return nil
	}
	return participant
}

// BuildState assembles the read model from a snapshot. Pure: it never
// mutates the snapshot.
func BuildState(snap *Snapshot, session *models.Session, viewer *models.Participant) models.SessionState {
	state := models.SessionState{
		Session:      *session,
		Participants: []models.ParticipantView{},
		Entries:      []models.EntryView{},
		Groups:       []models.EntryGroup{},
		ActionItems:  []models.ActionItem{},
	}

	for _, p := range snap.Participants {
		if p.SessionID != session.ID {
			continue
		}
		used := snap.votesUsed(session.ID, p.ID)
		view := models.ParticipantView{
			Participant:    *p,
			VotesUsed:      used,
			VotesRemaining: models.VoteLimit - used,
		}
		state.Participants = append(state.Participants, view)
		if viewer != nil && p.ID == viewer.ID {
			v := view
			state.Viewer = &v
		}
	}

	for _, e := range snap.Entries {
		if e.SessionID != session.ID {
			continue
		}
		view := models.EntryView{Entry: *e}
		for _, v := range snap.Votes {
			if v.EntryID == e.ID {
				view.VoteCount++
				if viewer != nil && v.ParticipantID == viewer.ID {
					view.ViewerVoted = true
				}
			}
		}
		state.Entries = append(state.Entries, view)
	}

	for _, g := range snap.Groups {
		if g.SessionID == session.ID {
			state.Groups = append(state.Groups, *g)
		}
	}

	for _, item := range snap.ActionItems {
		if item.SessionID == session.ID {
			state.ActionItems = append(state.ActionItems, *item)
		}
	}

	total := 0
	for _, check := range snap.HappinessChecks {
		if check.SessionID != session.ID {
			continue
		}
		total += check.Score
		state.Happiness.Count++
		if viewer != nil && check.ParticipantID == viewer.ID {
			state.Happiness.ViewerSubmitted = true
		}
	}
	if state.Happiness.Count > 0 {
		avg := float64(total) / float64(state.Happiness.Count)
		state.Happiness.Average = math.Round(avg*100) / 100
	}

	if nav := snap.Navigation[session.ID]; nav != nil {
		state.Navigation = *nav
	} else {
		state.Navigation = *defaultNavigation(session.ID, session.CreatedAt)
	}

	sortState(&state)
	return state
}

// sortState orders every collection by creation time (ID as tiebreaker) so
// responses are deterministic.
func sortState(state *models.SessionState) {
	sort.Slice(state.Participants, func(i, j int) bool {
		a, b := state.Participants[i], state.Participants[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	sort.Slice(state.Entries, func(i, j int) bool {
		a, b := state.Entries[i], state.Entries[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	sort.Slice(state.Groups, func(i, j int) bool {
		a, b := state.Groups[i], state.Groups[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	sort.Slice(state.ActionItems, func(i, j int) bool {
		a, b := state.ActionItems[i], state.ActionItems[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
