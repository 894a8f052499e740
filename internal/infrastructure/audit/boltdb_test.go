package audit

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"), "audit")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndList(t *testing.T) {
	store := openTestStore(t)

	entries := []Entry{
		{ActorID: "admin-1", Action: "delete_user", TargetID: "u1", Timestamp: time.Now().Add(-time.Hour)},
		{ActorID: "admin-1", Action: "promote_user", TargetID: "u2", Timestamp: time.Now()},
	}
	for _, entry := range entries {
		if err := store.Append(entry); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	got, err := store.List(10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Oldest first per the timestamp-ordered keys.
	if got[0].Action != "delete_user" || got[1].Action != "promote_user" {
		t.Fatalf("unexpected order: %q, %q", got[0].Action, got[1].Action)
	}
	if got[0].ID == "" {
		t.Fatal("expected generated entry id")
	}

	size, err := store.Size()
	if err != nil {
		t.Fatalf("Size error: %v", err)
	}
	if size != 2 {
		t.Fatalf("expected size 2, got %d", size)
	}
}

func TestCleanup(t *testing.T) {
	store := openTestStore(t)

	old := Entry{ActorID: "admin-1", Action: "delete_user", TargetID: "u1", Timestamp: time.Now().Add(-48 * time.Hour)}
	recent := Entry{ActorID: "admin-1", Action: "promote_user", TargetID: "u2", Timestamp: time.Now()}
	if err := store.Append(old); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := store.Append(recent); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	if err := store.Cleanup(time.Now().Add(-24 * time.Hour)); err != nil {
		t.Fatalf("Cleanup error: %v", err)
	}

	got, err := store.List(10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry after cleanup, got %d", len(got))
	}
	if got[0].Action != "promote_user" {
		t.Fatalf("wrong entry survived: %q", got[0].Action)
	}
}
