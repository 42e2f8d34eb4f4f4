// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns all authoritative retro-board state: sessions,
participants, entries, votes, groups, action items, happiness checks, and
navigation.

# Layout

  - Snapshot: the full data set, one collection per entity type
  - Backend: durable storage (FileBackend for JSON-on-disk, SQLBackend for
    sqlite/postgres)
  - Store: the write serializer plus every domain operation
  - BuildState: the read model builder

# Write Serialization

All mutations go through Store.WithLock, which holds a process-wide mutex
across the load -> mutate -> save window. Two concurrent operations can
never interleave their read-modify-write sequences, so multi-entity
invariants (the vote cap, group minimum size) hold without database
transactions. If the mutation function fails, nothing is persisted.

Reads (ReadSnapshot, SessionState) skip the lock. A read racing a write may
observe the snapshot from just before or just after the write, but never a
torn one: the file backend replaces the document atomically and retries
transient parse errors.

# Domain Operations

Every operation runs its precondition chain in order, short-circuiting on
the first failure: session exists, token resolves to a participant of that
session, admin/ownership check, entity existence and state checks. Failures
are typed (*Error) so the API layer can map them to statuses. All
successful mutations bump the session's updated_at.

Behavior worth calling out:

  - AddVote is idempotent per (participant, entry) and enforces the 5-vote
    cap with KindVoteLimit.
  - Deleting an entry cascades to its votes and may trigger group cleanup.
  - A group below 2 members is deleted and its remnant detached.
  - Moving an entry across sides detaches it from its group first.
  - UngroupEntry on an ungrouped entry is a no-op success.
  - SetNavigation derives the session phase from the active section.

# Read Model

SessionState aggregates the six entity collections into one viewer-aware
response. The token is optional; anonymous viewers get the same board
without viewer-specific annotations. The only write this path performs is
persisting a session's default navigation on first read.
*/
package store
