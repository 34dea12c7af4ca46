package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal-guru/internal/session"
	"jadwal-guru/pkg/response"
)

// Context keys
const (
	SessionKey = "session"
	ProfileKey = "user_profile"
)

// LoginPath where unauthenticated visitors are sent
const LoginPath = "/"

// Session opens the browser session of every request
func Session(provider *session.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(SessionKey, provider.Open(c.Writer, c.Request))
		c.Next()
	}
}

// RequireSession route guard: a token in either scope lets the request
// through and the cached profile, when present, is put in the context.
// Otherwise 401 with the login path in details.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !sess.Authenticated() {
			response.ErrorWithDetails(c, http.StatusUnauthorized, 10002, "Silakan login terlebih dahulu", LoginPath)
			c.Abort()
			return
		}

		if profile, ok := sess.Profile(); ok {
			c.Set(ProfileKey, profile)
		}

		c.Next()
	}
}

// GetSession session opened by Session, nil when the middleware did not run
func GetSession(c *gin.Context) *session.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
