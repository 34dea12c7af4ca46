package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal-guru/internal/api/middleware"
	"jadwal-guru/internal/dto"
	"jadwal-guru/internal/service"
	"jadwal-guru/pkg/response"
)

// DashboardPath where signed-in visitors land
const DashboardPath = "/dashboard"

// AuthHandler login, logout and session status
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login checks credentials and stores the token and profile in the session
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.IsBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Ukuran permintaan terlalu besar")
			return
		}
		response.BadRequest(c, 10001, "Format permintaan tidak valid")
		return
	}

	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			response.ErrorWithData(c, http.StatusBadRequest, 11002, err.Error(),
				dto.LoginFailure{Success: false, Message: err.Error()})
		case errors.Is(err, service.ErrInvalidCredentials):
			response.ErrorWithData(c, http.StatusUnauthorized, 11001, err.Error(),
				dto.LoginFailure{Success: false, Message: err.Error()})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.AbortWithStatus(http.StatusRequestTimeout)
		default:
			_ = c.Error(err)
			response.InternalError(c)
		}
		return
	}

	if err := sess.SetToken(result.Token, req.RememberMe); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}
	if err := sess.SetProfile(result.User); err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout clears the session; always succeeds
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := middleware.GetSession(c); sess != nil {
		if err := sess.Clear(); err != nil {
			_ = c.Error(err)
		}
	}
	response.OK(c, dto.SessionStatus{Authenticated: false, Redirect: middleware.LoginPath})
}

// Status route guard decision for the front end
// GET /api/v1/auth/status
func (h *AuthHandler) Status(c *gin.Context) {
	status := dto.SessionStatus{Redirect: middleware.LoginPath}
	if sess := middleware.GetSession(c); sess != nil && sess.Authenticated() {
		status.Authenticated = true
		status.Redirect = DashboardPath
		if p, ok := sess.Profile(); ok {
			status.User = p
		}
	}
	response.OK(c, status)
}

// Me cached profile of the signed-in user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	profile := GetProfile(c)
	if profile == nil {
		unauthenticated(c, service.ErrProfileMissing.Error())
		return
	}
	response.OK(c, profile)
}
