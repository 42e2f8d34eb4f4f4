// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/calebhsu/retroboard/models"
)

// Snapshot is the full persisted data set: one collection per entity type,
// keyed by entity ID, plus navigation keyed by session ID.
type Snapshot struct {
	Sessions        map[string]*models.Session         `json:"sessions"`
	Participants    map[string]*models.Participant     `json:"participants"`
	Entries         map[string]*models.Entry           `json:"entries"`
	Groups          map[string]*models.EntryGroup      `json:"groups"`
	ActionItems     map[string]*models.ActionItem      `json:"action_items"`
	Votes           map[string]*models.Vote            `json:"votes"`
	HappinessChecks map[string]*models.HappinessCheck  `json:"happiness_checks"`
	Navigation      map[string]*models.NavigationState `json:"navigation"`
}

// NewSnapshot returns an empty snapshot with all collections allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Sessions:        map[string]*models.Session{},
		Participants:    map[string]*models.Participant{},
		Entries:         map[string]*models.Entry{},
		Groups:          map[string]*models.EntryGroup{},
		ActionItems:     map[string]*models.ActionItem{},
		Votes:           map[string]*models.Vote{},
		HappinessChecks: map[string]*models.HappinessCheck{},
		Navigation:      map[string]*models.NavigationState{},
	}
}

// normalize allocates any collections missing from a loaded document so the
// rest of the store never has to nil-check maps.
func (s *Snapshot) normalize() {
	if s.Sessions == nil {
		s.Sessions = map[string]*models.Session{}
	}
	if s.Participants == nil {
		s.Participants = map[string]*models.Participant{}
	}
	if s.Entries == nil {
		s.Entries = map[string]*models.Entry{}
	}
	if s.Groups == nil {
		s.Groups = map[string]*models.EntryGroup{}
	}
	if s.ActionItems == nil {
		s.ActionItems = map[string]*models.ActionItem{}
	}
	if s.Votes == nil {
		s.Votes = map[string]*models.Vote{}
	}
	if s.HappinessChecks == nil {
		s.HappinessChecks = map[string]*models.HappinessCheck{}
	}
	if s.Navigation == nil {
		s.Navigation = map[string]*models.NavigationState{}
	}
}

// SessionBySlug finds a session by its slug, or nil.
func (s *Snapshot) SessionBySlug(slug string) *models.Session {
	for _, session := range s.Sessions {
		if session.Slug == slug {
			return session
		}
	}
	return nil
}

// slugTaken reports whether any session already uses slug.
func (s *Snapshot) slugTaken(slug string) bool {
	return s.SessionBySlug(slug) != nil
}

// votesUsed counts the votes a participant has cast in a session.
func (s *Snapshot) votesUsed(sessionID, participantID string) int {
	n := 0
	for _, v := range s.Votes {
		if v.SessionID == sessionID && v.ParticipantID == participantID {
			n++
		}
	}
	return n
}

// voteFor finds a participant's vote on an entry, or nil.
func (s *Snapshot) voteFor(entryID, participantID string) *models.Vote {
	for _, v := range s.Votes {
		if v.EntryID == entryID && v.ParticipantID == participantID {
			return v
		}
	}
	return nil
}

// deleteEntryVotes removes every vote referencing an entry.
func (s *Snapshot) deleteEntryVotes(entryID string) {
	for id, v := range s.Votes {
		if v.EntryID == entryID {
			delete(s.Votes, id)
		}
	}
}

// groupMembers returns the entries currently attached to a group.
func (s *Snapshot) groupMembers(groupID string) []*models.Entry {
	var members []*models.Entry
	for _, e := range s.Entries {
		if e.GroupID != nil && *e.GroupID == groupID {
			members = append(members, e)
		}
	}
	return members
}

// cleanupGroup deletes a group whose membership dropped below the minimum
// and detaches any remaining member. Safe to call for unknown group IDs.
func (s *Snapshot) cleanupGroup(groupID string) {
	if _, ok := s.Groups[groupID]; !ok {
		return
	}
	members := s.groupMembers(groupID)
	if len(members) >= models.MinGroupSize {
		return
	}
	for _, e := range members {
		e.GroupID = nil
	}
	delete(s.Groups, groupID)
}

// detachEntry removes an entry from its group, then runs group cleanup.
// No-op for ungrouped entries.
func (s *Snapshot) detachEntry(e *models.Entry) {
	if e.GroupID == nil {
		return
	}
	groupID := *e.GroupID
	e.GroupID = nil
	s.cleanupGroup(groupID)
}

// touch records a mutation on the session.
func touch(session *models.Session) {
	session.UpdatedAt = time.Now()
}
