package session

import (
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// CookieStorage Storage backed by one signed, encrypted cookie.
// Every write re-issues the cookie on w.
type CookieStorage struct {
	store  sessions.Store
	name   string
	r      *http.Request
	w      http.ResponseWriter
	logger *zap.Logger
}

// NewCookieStorage binds the named cookie of store to one request
func NewCookieStorage(store sessions.Store, name string, w http.ResponseWriter, r *http.Request, logger *zap.Logger) *CookieStorage {
	return &CookieStorage{store: store, name: name, r: r, w: w, logger: logger}
}

// session returns the cookie's session; an unreadable cookie yields a fresh one
func (c *CookieStorage) session() *sessions.Session {
	sess, err := c.store.Get(c.r, c.name)
	if err != nil {
		var cookieErr securecookie.Error
		if errors.As(err, &cookieErr) && cookieErr.IsDecode() {
			c.logger.Debug("discarding unreadable session cookie", zap.String("cookie", c.name))
		} else {
			c.logger.Warn("session cookie error", zap.String("cookie", c.name), zap.Error(err))
		}
	}
	return sess
}

func (c *CookieStorage) Get(key string) (string, bool) {
	sess := c.session()
	if sess == nil {
		return "", false
	}
	v, ok := sess.Values[key].(string)
	return v, ok
}

func (c *CookieStorage) Set(key, value string) error {
	sess := c.session()
	if sess == nil {
		return errors.New("session cookie unavailable")
	}
	sess.Values[key] = value
	return sess.Save(c.r, c.w)
}

func (c *CookieStorage) Remove(key string) error {
	sess := c.session()
	if sess == nil {
		return nil
	}
	if _, ok := sess.Values[key]; !ok {
		return nil
	}
	delete(sess.Values, key)
	return sess.Save(c.r, c.w)
}
