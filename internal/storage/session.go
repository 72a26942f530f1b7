package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
)

type sessionEntry struct {
	session  *book.Session
	lastSeen time.Time
}

// SessionStorage provides in-memory storage for reader sessions by chat ID.
// Sessions are not persisted; favorites live as long as the session does.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]sessionEntry
	now      func() time.Time
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]sessionEntry),
		now:      time.Now,
	}
}

// Get returns the session of a chat and marks it as recently used.
func (s *SessionStorage) Get(chatID int64) (*book.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	s.sessions[chatID] = e
	return e.session, true
}

// Store saves the session of a chat.
func (s *SessionStorage) Store(chatID int64, session *book.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = sessionEntry{session: session, lastSeen: s.now()}
}

// Delete removes the session of a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of live sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle removes sessions not used for longer than ttl and returns how many were removed.
func (s *SessionStorage) EvictIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	evicted := 0
	for chatID, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, chatID)
			evicted++
		}
	}
	return evicted
}
