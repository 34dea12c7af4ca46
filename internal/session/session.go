// Package session keeps the signed-in state of one browser.
//
// A Session spans two storage scopes: a durable one that survives the
// browser being closed ("remember me") and a volatile one that does not.
// The token lives in exactly one of them; the cached user profile always
// lives in the durable scope.
package session

import (
	"encoding/json"

	"jadwal-guru/internal/dto"
)

// Storage keys
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Storage one key/value scope
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Session signed-in state over a durable and a volatile Storage
type Session struct {
	durable  Storage
	volatile Storage
}

// New creates a Session
func New(durable, volatile Storage) *Session {
	return &Session{durable: durable, volatile: volatile}
}

// SetToken stores token in the durable scope when remember is set, otherwise
// in the volatile scope. The other scope's token is removed.
func (s *Session) SetToken(token string, remember bool) error {
	keep, drop := s.volatile, s.durable
	if remember {
		keep, drop = s.durable, s.volatile
	}
	if err := keep.Set(KeyToken, token); err != nil {
		return err
	}
	return drop.Remove(KeyToken)
}

// Token durable scope first, then volatile
func (s *Session) Token() (string, bool) {
	if t, ok := s.durable.Get(KeyToken); ok && t != "" {
		return t, true
	}
	if t, ok := s.volatile.Get(KeyToken); ok && t != "" {
		return t, true
	}
	return "", false
}

// Authenticated reports whether a token is present in either scope
func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// SetProfile caches the user profile in the durable scope
func (s *Session) SetProfile(p dto.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.durable.Set(KeyUser, string(raw))
}

// Profile returns the cached profile. A missing or unreadable entry both
// mean no profile.
func (s *Session) Profile() (*dto.UserProfile, bool) {
	raw, ok := s.durable.Get(KeyUser)
	if !ok || raw == "" {
		return nil, false
	}
	var p dto.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, false
	}
	return &p, true
}

// Clear removes both tokens and the profile. Safe to call repeatedly.
func (s *Session) Clear() error {
	var first error
	for _, step := range []func() error{
		func() error { return s.durable.Remove(KeyToken) },
		func() error { return s.volatile.Remove(KeyToken) },
		func() error { return s.durable.Remove(KeyUser) },
	} {
		if err := step(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
