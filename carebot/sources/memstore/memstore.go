// Package memstore is the in-memory persistence gateway used when postgres
// is unreachable at startup. Query semantics match the postgres variant for
// the statement shapes the system issues.
package memstore

import (
	"carebot/carebot/sources/store"
	"context"
	"sync"
	"time"
)

type Store struct {
	mu sync.RWMutex

	users      map[int]*store.User
	chats      []store.ChatMessage
	nextID     int
	nextChatID int

	// lastTS keeps store-assigned timestamps non-decreasing even when the
	// wall clock steps backwards.
	lastTS time.Time
}

func New() *Store {
	return &Store{
		users:      make(map[int]*store.User),
		nextID:     1,
		nextChatID: 1,
	}
}

func (s *Store) stamp() time.Time {
	now := time.Now()
	if now.Before(s.lastTS) {
		now = s.lastTS
	}
	s.lastTS = now
	return now
}

func (s *Store) CreateUser(ctx context.Context, user *store.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = s.stamp()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*store.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*store.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *store.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[user.ID]
	if !ok {
		// Save on a missing row inserts, same as gorm's Save.
		cp := *user
		s.users[user.ID] = &cp
		return nil
	}
	user.CreatedAt = existing.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *Store) SaveChat(ctx context.Context, userID int, query, response string) (*store.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := store.ChatMessage{
		ChatID:    s.nextChatID,
		UserID:    userID,
		Query:     query,
		Response:  response,
		Timestamp: s.stamp(),
	}
	s.nextChatID++
	s.chats = append(s.chats, msg)
	cp := msg
	return &cp, nil
}

func (s *Store) GetChatHistory(ctx context.Context, userID int) ([]store.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// chats is append-only in timestamp order, so walking backwards yields
	// newest first.
	var out []store.ChatMessage
	for i := len(s.chats) - 1; i >= 0; i-- {
		if s.chats[i].UserID == userID {
			out = append(out, s.chats[i])
		}
	}
	return out, nil
}

func (s *Store) Close() error {
	return nil
}
