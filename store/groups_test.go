// Copyright (c) 2025 Caleb Hsu.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"

	"github.com/calebhsu/retroboard/models"
	"github.com/calebhsu/retroboard/store"
	"github.com/calebhsu/retroboard/testutil"
)

func TestCreateGroup(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	slug, token := testutil.CreateTestSession(t, st, "Retro", "Owner")
	e1 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentWrong, "slow reviews")
	e2 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentWrong, "stuck PRs")

	group, err := st.CreateGroup(ctx, slug, token, e1.ID, e2.ID, "review flow")
	if err != nil {
		t.Fatalf("CreateGroup() error = %v", err)
	}
	if group.Type != models.TypeWentWrong {
		t.Errorf("group type = %q, want inherited %q", group.Type, models.TypeWentWrong)
	}

	state, _ := st.SessionState(ctx, slug, token)
	for _, e := range state.Entries {
		if e.GroupID == nil || *e.GroupID != group.ID {
			t.Errorf("entry %s not attached to group", e.ID)
		}
	}
}

func TestCreateGroupPreconditions(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	slug, token := testutil.CreateTestSession(t, st, "Retro", "Owner")
	right1 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "r1")
	right2 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "r2")
	right3 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "r3")
	wrong1 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentWrong, "w1")

	// Side mismatch
	_, err := st.CreateGroup(ctx, slug, token, right1.ID, wrong1.ID, "mixed")
	assertKind(t, err, store.KindConflict)

	// Self-grouping
	_, err = st.CreateGroup(ctx, slug, token, right1.ID, right1.ID, "self")
	assertKind(t, err, store.KindValidation)

	// Unknown entry
	_, err = st.CreateGroup(ctx, slug, token, right1.ID, "missing", "ghost")
	assertKind(t, err, store.KindNotFound)

	// A failed create must not have mutated anything
	state, _ := st.SessionState(ctx, slug, token)
	if len(state.Groups) != 0 {
		t.Fatalf("groups = %d, want 0 after failed creates", len(state.Groups))
	}
	for _, e := range state.Entries {
		if e.GroupID != nil {
			t.Errorf("entry %s grouped by a failed create", e.ID)
		}
	}

	// Already-grouped entries cannot be re-grouped
	if _, err := st.CreateGroup(ctx, slug, token, right1.ID, right2.ID, "wins"); err != nil {
		t.Fatal(err)
	}
	_, err = st.CreateGroup(ctx, slug, token, right1.ID, right3.ID, "again")
	assertKind(t, err, store.KindConflict)

	// Including re-creating a group from the same pair
	_, err = st.CreateGroup(ctx, slug, token, right1.ID, right2.ID, "duplicate")
	assertKind(t, err, store.KindConflict)
}

func TestAddEntryToGroup(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	slug, token := testutil.CreateTestSession(t, st, "Retro", "Owner")
	e1 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "r1")
	e2 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "r2")
	e3 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "r3")
	wrong := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentWrong, "w1")

	group, err := st.CreateGroup(ctx, slug, token, e1.ID, e2.ID, "wins")
	if err != nil {
		t.Fatal(err)
	}

	if err := st.AddEntryToGroup(ctx, slug, token, group.ID, e3.ID); err != nil {
		t.Fatalf("AddEntryToGroup() error = %v", err)
	}

	// Type mismatch
	err = st.AddEntryToGroup(ctx, slug, token, group.ID, wrong.ID)
	assertKind(t, err, store.KindConflict)

	// Already grouped
	err = st.AddEntryToGroup(ctx, slug, token, group.ID, e1.ID)
	assertKind(t, err, store.KindConflict)

	// Unknown group
	err = st.AddEntryToGroup(ctx, slug, token, "missing", e3.ID)
	assertKind(t, err, store.KindNotFound)
}

func TestUngroupEntryShrinksAndDissolves(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	slug, token := testutil.CreateTestSession(t, st, "Retro", "Owner")
	e1 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "r1")
	e2 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "r2")
	e3 := testutil.CreateTestEntry(t, st, slug, token, models.TypeWentRight, "r3")

	group, err := st.CreateGroup(ctx, slug, token, e1.ID, e2.ID, "wins")
	if err != nil {
		t.Fatal(err)
	}
	if err := st.AddEntryToGroup(ctx, slug, token, group.ID, e3.ID); err != nil {
		t.Fatal(err)
	}

	// Three members: removing one keeps the group
	if err := st.UngroupEntry(ctx, slug, token, e3.ID); err != nil {
		t.Fatalf("UngroupEntry() error = %v", err)
	}
	state, _ := st.SessionState(ctx, slug, token)
	if len(state.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(state.Groups))
	}

	// Down to one member: group dissolves, remnant is standalone
	if err := st.UngroupEntry(ctx, slug, token, e1.ID); err != nil {
		t.Fatalf("UngroupEntry() error = %v", err)
	}
	state, _ = st.SessionState(ctx, slug, token)
	if len(state.Groups) != 0 {
		t.Fatalf("groups = %d, want 0", len(state.Groups))
	}
	for _, e := range state.Entries {
		if e.GroupID != nil {
			t.Errorf("entry %s still grouped after dissolve", e.ID)
		}
	}

	// Ungrouping an ungrouped entry is a no-op success
	if err := st.UngroupEntry(ctx, slug, token, e2.ID); err != nil {
		t.Errorf("double ungroup error = %v, want nil", err)
	}
}
