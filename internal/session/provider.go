package session

import (
	"crypto/sha256"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"jadwal-guru/config"
	"jadwal-guru/pkg/redis"
)

// Cookie names
const (
	DurableCookie  = "jg_keep"
	VolatileCookie = "jg_tab"
	DeviceCookie   = "jg_device"
)

// Provider opens the Session of an HTTP request
type Provider struct {
	durable  *sessions.CookieStore
	volatile *sessions.CookieStore
	redis    *redis.Client
	ttl      time.Duration
	cookie   config.CookieConfig
	logger   *zap.Logger
}

// NewProvider builds the cookie stores from cfg. client is required when the
// durable scope is kept in Redis and ignored otherwise.
func NewProvider(cfg *config.SessionConfig, client *redis.Client, logger *zap.Logger) (*Provider, error) {
	if len(cfg.Secret) < 32 {
		return nil, errors.New("session secret must be at least 32 characters")
	}
	if cfg.DurableStore == config.SessionStoreRedis && client == nil {
		return nil, errors.New("redis durable session store requires a redis client")
	}

	hashKey := []byte(cfg.Secret)
	blockKey := sha256.Sum256(hashKey)

	durable := sessions.NewCookieStore(hashKey, blockKey[:])
	durable.Options = cookieOptions(cfg.Cookie)
	durable.MaxAge(int(cfg.RememberTTL.Seconds()))

	volatile := sessions.NewCookieStore(hashKey, blockKey[:])
	volatile.Options = cookieOptions(cfg.Cookie)
	volatile.Options.MaxAge = 0

	p := &Provider{
		durable:  durable,
		volatile: volatile,
		ttl:      cfg.RememberTTL,
		cookie:   cfg.Cookie,
		logger:   logger,
	}
	if cfg.DurableStore == config.SessionStoreRedis {
		p.redis = client
	}
	return p, nil
}

// Open returns the Session for r; writes go out as cookies on w
func (p *Provider) Open(w http.ResponseWriter, r *http.Request) *Session {
	volatile := NewCookieStorage(p.volatile, VolatileCookie, w, r, p.logger)
	if p.redis == nil {
		return New(NewCookieStorage(p.durable, DurableCookie, w, r, p.logger), volatile)
	}
	device := p.deviceID(w, r)
	return New(NewRedisStorage(r.Context(), p.redis, device, p.ttl, p.logger), volatile)
}

// deviceID reads the device cookie, issuing a new id when absent or malformed
func (p *Provider) deviceID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(DeviceCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	opts := cookieOptions(p.cookie)
	opts.MaxAge = int(p.ttl.Seconds())
	http.SetCookie(w, sessions.NewCookie(DeviceCookie, id, opts))
	return id
}

func cookieOptions(c config.CookieConfig) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		Domain:   c.Domain,
		Secure:   c.Secure,
		HttpOnly: true,
		SameSite: parseSameSite(c.SameSite),
	}
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
