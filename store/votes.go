// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/calebhsu/retroboard/models"
)

// AddVote records the caller's vote on an entry. Voting twice on the same
// entry is idempotent and returns the existing vote. A participant may hold
// at most models.VoteLimit votes per session.
func (st *Store) AddVote(ctx context.Context, slug, token, entryID string) (models.Vote, error) {
	var result models.Vote
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

		if existing := snap.voteFor(entry.ID, participant.ID); existing != nil {
			result = *existing
			return nil
		}

		if snap.votesUsed(session.ID, participant.ID) >= models.VoteLimit {
			return errVoteLimit("vote limit reached")
		}

		vote := &models.Vote{
			ID:            uuid.NewString(),
			SessionID:     session.ID,
			EntryID:       entry.ID,
			ParticipantID: participant.ID,
			Value:         1,
			CreatedAt:     time.Now(),
		}
		snap.Votes[vote.ID] = vote
		touch(session)

		result = *vote
		return nil
	})
	if err != nil {
		return models.Vote{}, err
	}
	return result, nil
}

// RemoveVote deletes the caller's vote on an entry. Absence of the vote
// fails with not found.
func (st *Store) RemoveVote(ctx context.Context, slug, token, entryID string) error {
	return st.WithLock(ctx, func(snap *Snapshot) error {
		session, err := st.session(snap, slug)
		if err != nil {
			return err
		}
		participant, err := st.authenticate(snap, session, token)
		if err != nil {
			return err
		}

		if _, err := sessionEntry(snap, session.ID, entryID); err != nil {
			return err
		}

		vote := snap.voteFor(entryID, participant.ID)
		if vote == nil {
			return errNotFound("vote not found")
		}

		delete(snap.Votes, vote.ID)
		touch(session)
		return nil
	})
}
