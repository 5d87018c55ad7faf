package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// SessionMaxAge caps a session regardless of activity.
	SessionMaxAge = 24 * time.Hour
	// SessionIdleTimeout ends a session after this much inactivity.
	SessionIdleTimeout = 30 * time.Minute
)

// SessionExpired decides expiry purely from the three instants, so handlers
// and tests can call it without touching the store.
func SessionExpired(startedAt, lastActivity, now time.Time) bool {
	if now.Sub(startedAt) > SessionMaxAge {
		return true
	}
	return now.Sub(lastActivity) > SessionIdleTimeout
}

type Session struct {
	ID           string
	UserID       string
	StartedAt    time.Time
	LastActivity time.Time
}

type SessionStore interface {
	Create(userID string) Session

	// Touch returns the session and records activity at now. An expired
	// session is removed and reported as absent.
	Touch(id string, now time.Time) (Session, bool)

	Delete(id string)
}

type Sessions struct {
	mu   sync.Mutex
	data map[string]Session
}

func NewSessions() *Sessions {
	return &Sessions{data: make(map[string]Session)}
}

func (s *Sessions) Create(userID string) Session {
	now := time.Now()
	sess := Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		StartedAt:    now,
		LastActivity: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sess.ID] = sess
	return sess
}

func (s *Sessions) Touch(id string, now time.Time) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[id]
	if !ok {
		return Session{}, false
	}
	if SessionExpired(sess.StartedAt, sess.LastActivity, now) {
		delete(s.data, id)
		return Session{}, false
	}

	sess.LastActivity = now
	s.data[id] = sess
	return sess, true
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
