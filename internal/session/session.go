package session

import (
	"crypto/subtle"
	"sync"

	"golang.org/x/oauth2"
)

// Session is the per-browser state kept between requests.
type Session struct {
	ID      string
	History *History

	mu         sync.RWMutex
	token      *oauth2.Token
	oauthState string
}

func newSession(id string) *Session {
	return &Session{
		ID:      id,
		History: NewHistory(MaxHistory),
	}
}

// Token returns the Google token obtained through the OAuth flow, or nil.
func (s *Session) Token() *oauth2.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores tok for the session.
func (s *Session) SetToken(tok *oauth2.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
}

// SetOAuthState remembers the state parameter sent to the consent screen.
func (s *Session) SetOAuthState(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.oauthState = state
}

// ConsumeOAuthState reports whether state matches the pending one and clears it.
// A state can only be used once.
func (s *Session) ConsumeOAuthState(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.oauthState
	s.oauthState = ""
	if pending == "" || state == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(pending), []byte(state)) == 1
}
