// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calebhsu/retroboard/auth"
	"github.com/calebhsu/retroboard/models"
)

// CreatedSession is the result of CreateSession: the new session, its admin
// participant, and the admin's token.
type CreatedSession struct {
	Session models.Session
	Admin   models.Participant
	Token   string
}

// JoinedSession is the result of JoinSession.
type JoinedSession struct {
	Participant models.Participant
	Token       string
}

// CreateSession creates a session with its admin participant and default
// navigation, and issues the admin token. No auth required.
func (st *Store) CreateSession(ctx context.Context, title, sprintLabel, adminName string) (CreatedSession, error) {
	title = strings.TrimSpace(title)
	adminName = strings.TrimSpace(adminName)
	if title == "" {
		return CreatedSession{}, errValidation("title is required")
	}
	if adminName == "" {
		return CreatedSession{}, errValidation("admin name is required")
	}

	var result CreatedSession
	err := st.WithLock(ctx, func(snap *Snapshot) error {
		slug, err := uniqueSlug(snap, title)
		if err != nil {
			return err
		}

		now := time.Now()
		session := &models.Session{
			ID:        uuid.NewString(),
			Slug:      slug,
			Title:     title,
			Phase:     models.PhaseCollecting,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if label := strings.TrimSpace(sprintLabel); label != "" {
			session.SprintLabel = &label
		}

		admin := &models.Participant{
			ID:        uuid.NewString(),
			SessionID: session.ID,
			Name:      adminName,
			IsAdmin:   true,
			CreatedAt: now,
		}
		session.AdminID = admin.ID

		snap.Sessions[session.ID] = session
		snap.Participants[admin.ID] = admin
		snap.Navigation[session.ID] = defaultNavigation(session.ID, now)

		token, err := auth.IssueToken(admin.ID, session.ID, st.secret, st.ttl)
		if err != nil {
			return err
		}

		result = CreatedSession{Session: *session, Admin: *admin, Token: token}
		return nil
	})
	if err != nil {
		return CreatedSession{}, err
	}
	return result, nil
}

// JoinSession adds a non-admin participant to an existing session and
// issues their token. No auth required.
func (st *Store) JoinSession(ctx context.Context, slug, name string) (JoinedSession, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return JoinedSession{}, errValidation("name is required")
	}

	var result JoinedSession
	err := st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}

		participant := &models.Participant{
			ID:        uuid.NewString(),
			SessionID: session.ID,
			Name:      name,
			IsAdmin:   false,
			CreatedAt: time.Now(),
		}
		snap.Participants[participant.ID] = participant
		touch(session)

		token, err := auth.IssueToken(participant.ID, session.ID, st.secret, st.ttl)
		if err != nil {
			return err
		}

		result = JoinedSession{Participant: *participant, Token: token}
		return nil
	})
	if err != nil {
		return JoinedSession{}, err
	}
	return result, nil
}

func defaultNavigation(sessionID string, now time.Time) *models.NavigationState {
	return &models.NavigationState{
		SessionID:     sessionID,
		ActiveSection: models.SectionRetro,
		UpdatedAt:     now,
	}
}

// uniqueSlug builds slugify(title) plus a random suffix, retrying until the
// result is globally unique.
func uniqueSlug(snap *Snapshot, title string) (string, error) {
	base := slugify(title)
	for i := 0; i < 10; i++ {
		suffix, err := auth.GenerateID(3)
		if err != nil {
			return "", err
		}
		slug := base + "-" + suffix
		if !snap.slugTaken(slug) {
			return slug, nil
		}
	}
	return "", errConflict("could not allocate a unique slug")
}

// slugify lowercases title and collapses runs of non-alphanumerics into
// single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "retro"
	}
	return slug
}
