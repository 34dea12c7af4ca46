package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal-guru/internal/api/middleware"
	"jadwal-guru/internal/dto"
	"jadwal-guru/internal/session"
	"jadwal-guru/pkg/response"
)

// MustGetSession returns the request's session.
// If the Session middleware did not run it writes a 500 and returns false;
// callers should return right away when ok is false.
func MustGetSession(c *gin.Context) (*session.Session, bool) {
	sess := middleware.GetSession(c)
	if sess == nil {
		response.InternalError(c)
		return nil, false
	}
	return sess, true
}

// GetProfile cached profile put in the context by RequireSession, nil if absent
func GetProfile(c *gin.Context) *dto.UserProfile {
	v, ok := c.Get(middleware.ProfileKey)
	if !ok {
		return nil
	}
	p, _ := v.(*dto.UserProfile)
	return p
}

func unauthenticated(c *gin.Context, message string) {
	response.ErrorWithDetails(c, http.StatusUnauthorized, 10002, message, middleware.LoginPath)
}
