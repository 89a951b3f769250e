package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-portal/internal/session"
)

const ContextSession = "session"

// Session attaches the browser's page session, creating one when the cookie
// is missing or refers to an expired session.
func Session(reg *session.Registry, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s *session.Session
		if id, err := c.Cookie(session.CookieName); err == nil {
			s, _ = reg.Get(id)
		}
		if s == nil {
			s = reg.Create()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, s.ID, 0, "/", "", secure, true)
		}
		c.Set(ContextSession, s)
		c.Next()
	}
}

// CurrentSession returns the session attached by Session.
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(ContextSession).(*session.Session)
}
