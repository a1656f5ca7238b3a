package ai

import "sync"

// contextWindow keeps a bounded number of recent message texts per user so
// providers that accept history get continuity across turns. It is process
// lifetime only, never persisted. Concurrent messages from the same user
// race last-write-wins on truncation; that is accepted.
type contextWindow struct {
	mu     sync.Mutex
	limit  int
	byUser map[int][]string
}

func newContextWindow(limit int) *contextWindow {
	return &contextWindow{
		limit:  limit,
		byUser: make(map[int][]string),
	}
}

// Append records a message text for the user, evicting the oldest entries
// past the window limit.
func (w *contextWindow) Append(userID int, text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	history := append(w.byUser[userID], text)
	if len(history) > w.limit {
		history = history[len(history)-w.limit:]
	}
	w.byUser[userID] = history
}

// Snapshot returns a copy of the user's window.
func (w *contextWindow) Snapshot(userID int) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	history := w.byUser[userID]
	out := make([]string, len(history))
	copy(out, history)
	return out
}

// Clear drops the user's window. Called on provider error so corrupted
// context does not leak into the next exchange.
func (w *contextWindow) Clear(userID int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.byUser, userID)
}
