// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Session phase constants
const (
	PhaseCollecting = "collecting"
	PhaseDiscussing = "discussing"
	PhaseFinished   = "finished"
)

// Entry type constants
const (
	TypeWentRight = "went_right"
	TypeWentWrong = "went_wrong"
)

// Navigation section constants
const (
	SectionRetro      = "retro"
	SectionDiscussion = "discussion"
	SectionActions    = "actions"
	SectionHappiness  = "happiness"
	SectionDone       = "done"
)

// VoteLimit is the maximum number of votes a participant may cast per session.
const VoteLimit = 5

// MinGroupSize is the smallest member count an entry group may persist with.
const MinGroupSize = 2

// Request types

type CreateSessionRequest struct {
	Title       string `json:"title"`
	SprintLabel string `json:"sprint_label,omitempty"`
	AdminName   string `json:"admin_name"`
}

type JoinSessionRequest struct {
	Name string `json:"name"`
}

type CreateEntryRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type UpdateEntryRequest struct {
	Content string `json:"content"`
}

type MoveEntryRequest struct {
	Type string `json:"type"`
}

type CreateGroupRequest struct {
	SourceEntryID string `json:"source_entry_id"`
	TargetEntryID string `json:"target_entry_id"`
	Name          string `json:"name"`
}

type AddToGroupRequest struct {
	EntryID string `json:"entry_id"`
}

type CreateActionItemRequest struct {
	Content string `json:"content"`
}

type HappinessRequest struct {
	Score int `json:"score"`
}

type NavigationRequest struct {
	ActiveSection     string  `json:"active_section"`
	DiscussionEntryID *string `json:"discussion_entry_id,omitempty"`
}

// Response types

type CreateSessionResponse struct {
	Session Session `json:"session"`
	Token   string  `json:"token"`
}

type JoinSessionResponse struct {
	Participant Participant `json:"participant"`
	Token       string      `json:"token"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Session struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	SprintLabel *string   `json:"sprint_label,omitempty"`
	AdminID     string    `json:"admin_id"`
	Phase       string    `json:"phase"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Participant struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type Entry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	AuthorID  string    `json:"author_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	GroupID   *string   `json:"group_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"session_id"`
	EntryID       string    `json:"entry_id"`
	ParticipantID string    `json:"participant_id"`
	Value         int       `json:"value"`
	CreatedAt     time.Time `json:"created_at"`
}

type EntryGroup struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ActionItem struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	CreatorID string    `json:"creator_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type HappinessCheck struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"session_id"`
	ParticipantID string    `json:"participant_id"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type NavigationState struct {
	SessionID         string    `json:"session_id"`
	ActiveSection     string    `json:"active_section"`
	DiscussionEntryID *string   `json:"discussion_entry_id,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Read model types

// ParticipantView is a participant annotated with vote usage against the cap.
type ParticipantView struct {
	Participant
	VotesUsed      int `json:"votes_used"`
	VotesRemaining int `json:"votes_remaining"`
}

// EntryView is an entry annotated with its vote count and whether the viewer
// has voted on it.
type EntryView struct {
	Entry
	VoteCount   int  `json:"vote_count"`
	ViewerVoted bool `json:"viewer_voted"`
}

// HappinessSummary aggregates happiness scores for a session.
type HappinessSummary struct {
	Average         float64 `json:"average"`
	Count           int     `json:"count"`
	ViewerSubmitted bool    `json:"viewer_submitted"`
}

// SessionState is the aggregated per-viewer view of one session.
type SessionState struct {
	Session      Session           `json:"session"`
	Participants []ParticipantView `json:"participants"`
	Entries      []EntryView       `json:"entries"`
	Groups       []EntryGroup      `json:"groups"`
	ActionItems  []ActionItem      `json:"action_items"`
	Happiness    HappinessSummary  `json:"happiness"`
	Navigation   NavigationState   `json:"navigation"`
	Viewer       *ParticipantView  `json:"viewer,omitempty"`
}

// ValidEntryType reports whether t is a known entry type.
func ValidEntryType(t string) bool {
	return t == TypeWentRight || t == TypeWentWrong
}

// ValidSection reports whether s is a known navigation section.
func ValidSection(s string) bool {
	switch s {
	case SectionRetro, SectionDiscussion, SectionActions, SectionHappiness, SectionDone:
		return true
	}
	return false
}

// PhaseForSection maps a navigation section to the session phase it implies.
func PhaseForSection(section string) string {
	switch section {
	case SectionRetro:
		return PhaseCollecting
	case SectionDone:
		return PhaseFinished
	default:
		return PhaseDiscussing
	}
}
