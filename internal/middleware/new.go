package middleware

import (
	"smart-task-planner/config"
	"smart-task-planner/internal/session"
	"smart-task-planner/pkg/log"
)

type Middleware struct {
	l        log.Logger
	sessions *session.Store
	cookie   config.SessionConfig
	limiter  *rateLimiter
}

// New creates the middleware set. rateLimitPerMin <= 0 disables rate limiting.
func New(l log.Logger, sessions *session.Store, cookie config.SessionConfig, rateLimitPerMin int) Middleware {
	if cookie.CookieName == "" {
		cookie.CookieName = defaultCookieName
	}

	m := Middleware{
		l:        l,
		sessions: sessions,
		cookie:   cookie,
	}
	if rateLimitPerMin > 0 {
		m.limiter = newRateLimiter(rateLimitPerMin)
	}
	return m
}
