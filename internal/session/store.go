package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultMaxSessions = 1000
	defaultTTL         = 24 * time.Hour
)

// Store keeps sessions in memory. Idle sessions expire after the TTL and the
// least recently used ones are evicted once the store is full.
type Store struct {
	sessions *expirable.LRU[string, *Session]
}

// NewStore creates a Store.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Get returns the session with id and extends its lifetime.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	s.sessions.Add(id, sess)
	return sess, true
}

// Create starts a new session with a random id.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString())
	s.sessions.Add(sess.ID, sess)
	return sess
}

// GetOrCreate returns the session for id, or a fresh one when id is unknown
// or expired. created reports which happened.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	return s.Create(), true
}

// Delete drops the session.
func (s *Store) Delete(id string) {
	s.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
