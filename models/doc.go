// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and read-model types.

# Request Types

Types for parsing incoming JSON:

  - CreateSessionRequest: title, sprint_label, admin_name
  - JoinSessionRequest: name
  - CreateEntryRequest: type, content
  - UpdateEntryRequest: content
  - MoveEntryRequest: type
  - CreateGroupRequest: source_entry_id, target_entry_id, name
  - AddToGroupRequest: entry_id
  - CreateActionItemRequest: content
  - HappinessRequest: score (1-10)
  - NavigationRequest: active_section, discussion_entry_id

# Response Types

Types for JSON responses:

  - CreateSessionResponse: session, token
  - JoinSessionResponse: participant, token
  - SuccessResponse: success
  - ErrorResponse: error, message

# Domain Types

Internal data structures, each owned by exactly one session:

  - Session: board metadata, slug, admin, phase
  - Participant: one human in a session
  - Entry: a went_right/went_wrong retro item
  - Vote: one participant's endorsement of one entry
  - EntryGroup: a named cluster of >= 2 same-type entries
  - ActionItem: admin-created follow-up
  - HappinessCheck: 1-10 score, one per participant
  - NavigationState: the shared board stage, one per session

# Read Model Types

Aggregated, viewer-aware projections returned by GET /sessions/{slug}:

  - SessionState: the full board view
  - ParticipantView: participant + votes_used/votes_remaining
  - EntryView: entry + vote_count/viewer_voted
  - HappinessSummary: average, count, viewer_submitted

# Constants

Session phases:

	PhaseCollecting = "collecting"
	PhaseDiscussing = "discussing"
	PhaseFinished   = "finished"

Entry types:

	TypeWentRight = "went_right"
	TypeWentWrong = "went_wrong"

Navigation sections:

	SectionRetro, SectionDiscussion, SectionActions,
	SectionHappiness, SectionDone

Limits:

	VoteLimit    = 5
	MinGroupSize = 2
*/
package models
