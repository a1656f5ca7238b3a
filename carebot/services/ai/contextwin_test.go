package ai

import "testing"

func TestContextWindowEvictsOldest(t *testing.T) {
	w := newContextWindow(6)
	for _, msg := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		w.Append(1, msg)
	}
	got := w.Snapshot(1)
	if len(got) != 6 {
		t.Fatalf("expected window of 6, got %d", len(got))
	}
	if got[0] != "c" || got[5] != "h" {
		t.Errorf("expected oldest entries evicted, got %v", got)
	}
}

func TestContextWindowPerUser(t *testing.T) {
	w := newContextWindow(6)
	w.Append(1, "one")
	w.Append(2, "two")
	if got := w.Snapshot(1); len(got) != 1 || got[0] != "one" {
		t.Errorf("user 1 window = %v", got)
	}
	if got := w.Snapshot(2); len(got) != 1 || got[0] != "two" {
		t.Errorf("user 2 window = %v", got)
	}
}

func TestContextWindowClear(t *testing.T) {
	w := newContextWindow(6)
	w.Append(1, "one")
	w.Append(1, "two")
	w.Clear(1)
	if got := w.Snapshot(1); len(got) != 0 {
		t.Errorf("expected empty window after clear, got %v", got)
	}
}

func TestContextWindowSnapshotIsCopy(t *testing.T) {
	w := newContextWindow(6)
	w.Append(1, "one")
	snap := w.Snapshot(1)
	snap[0] = "mutated"
	if got := w.Snapshot(1); got[0] != "one" {
		t.Errorf("snapshot mutation leaked into window")
	}
}
