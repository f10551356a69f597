// Package memory contains in-memory implementations of secondary ports.
package memory

import (
	"fmt"
	"sync"

	"github.com/example/kwonka/internal/models"
)

type sessionKey struct {
	role   models.Role
	chatID int64
}

type sessionEntry struct {
	mu   sync.Mutex
	sess *models.Session
}

// SessionStore implements secondary.SessionStore with an in-process map.
// Calls for the same (role, chat) key are serialized on a per-entry mutex so
// two messages from the same actor can never interleave their state updates.
type SessionStore struct {
	mu      sync.Mutex
	entries map[sessionKey]*sessionEntry
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{entries: make(map[sessionKey]*sessionEntry)}
}

func (s *SessionStore) entry(role models.Role, chatID int64) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{role: role, chatID: chatID}
	e, ok := s.entries[key]
	if !ok {
		e = &sessionEntry{sess: models.NewSession(role, chatID)}
		s.entries[key] = e
	}
	return e
}

// With runs fn against the session for the given key under its entry lock.
// Mutations are rolled back when fn returns an error.
func (s *SessionStore) With(role models.Role, chatID int64, fn func(*models.Session) error) error {
	e := s.entry(role, chatID)

	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := cloneSession(e.sess)
	if err := fn(e.sess); err != nil {
		*e.sess = *snapshot
		return fmt.Errorf("session %s:%d: %w", role, chatID, err)
	}
	return nil
}

// Peek returns a copy of the session for the given key.
func (s *SessionStore) Peek(role models.Role, chatID int64) (models.Session, bool) {
	s.mu.Lock()
	e, ok := s.entries[sessionKey{role: role, chatID: chatID}]
	s.mu.Unlock()
	if !ok {
		return models.Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return *cloneSession(e.sess), true
}

// BaristaForShop returns the chat ID of a barista currently bound to the
// given shop code.
func (s *SessionStore) BaristaForShop(shopCode string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if key.role != models.RoleBarista {
			continue
		}
		e.mu.Lock()
		bound := e.sess.ShopCode == shopCode
		e.mu.Unlock()
		if bound {
			return key.chatID, true
		}
	}
	return 0, false
}

func cloneSession(sess *models.Session) *models.Session {
	clone := *sess
	clone.Selections = make(map[string]string, len(sess.Selections))
	for k, v := range sess.Selections {
		clone.Selections[k] = v
	}
	return &clone
}
