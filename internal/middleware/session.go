package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/model"
	"smart-task-planner/internal/session"
)

const (
	defaultCookieName = "planner_session"
	sessionKey        = "planner.session"
)

// Session loads the caller's session from its cookie, creating one when the
// cookie is missing or the session expired.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(m.cookie.CookieName)

		sess, created := m.sessions.GetOrCreate(id)
		if created {
			m.l.Debugf(c.Request.Context(), "middleware.Session: new session %s", sess.ID)
		}

		// Refresh the cookie so its lifetime follows the sliding session TTL.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cookie.CookieName, sess.ID, int(m.cookie.TTL.Seconds()), "/", "", m.cookie.Secure, true)

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session attached by Session.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

// ScopeFrom builds the request scope from the attached session.
func ScopeFrom(c *gin.Context) model.Scope {
	sess, ok := SessionFrom(c)
	if !ok {
		return model.Scope{}
	}
	return model.Scope{
		SessionID:     sess.ID,
		Authenticated: sess.Token() != nil,
	}
}
