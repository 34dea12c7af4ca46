package dto

import "jadwal-guru/internal/model"

// ── auth DTOs ──

// LoginRequest login form
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// LoginResponse successful login
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}

// LoginFailure failed login; carried in the data field of the error envelope
type LoginFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserProfile public part of a user, password excluded.
// This is also the shape cached in the session.
type UserProfile struct {
	ID       model.ID `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
}

// NewUserProfile strips the password
func NewUserProfile(u model.User) UserProfile {
	return UserProfile{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
	}
}

// SessionStatus route guard decision
type SessionStatus struct {
	Authenticated bool         `json:"authenticated"`
	Redirect      string       `json:"redirect"`
	User          *UserProfile `json:"user,omitempty"`
}
