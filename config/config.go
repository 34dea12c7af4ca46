package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config application-wide configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Fixtures FixturesConfig `mapstructure:"fixtures"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Session  SessionConfig  `mapstructure:"session"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig cross-origin settings
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Fixture sources
const (
	FixtureSourceFile     = "file"
	FixtureSourcePostgres = "postgres"
)

// FixturesConfig where the read-only dataset is loaded from at startup
type FixturesConfig struct {
	Source string `mapstructure:"source"` // "file" | "postgres"
	Dir    string `mapstructure:"dir"`
}

// DatabaseConfig PostgreSQL settings, only used by the postgres fixture source and cmd/seed
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN builds the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Durable session stores
const (
	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
)

// SessionConfig session scopes ("remember me" is the durable scope)
type SessionConfig struct {
	Secret       string        `mapstructure:"secret"`
	DurableStore string        `mapstructure:"durable_store"` // "cookie" | "redis"
	RememberTTL  time.Duration `mapstructure:"remember_ttl"`
	Cookie       CookieConfig  `mapstructure:"cookie"`
}

// CookieConfig cookie security settings
type CookieConfig struct {
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
	Domain   string `mapstructure:"domain"`
}

// AuthConfig login behaviour
type AuthConfig struct {
	LoginDelay     time.Duration `mapstructure:"login_delay"`
	LoginRateLimit int           `mapstructure:"login_rate_limit"` // per minute per ip, 0 disables
}

// ScheduleConfig calendar settings
type ScheduleConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Location resolves the configured timezone, falling back to UTC.
func (c *ScheduleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LogConfig logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" | "console"
	Output string `mapstructure:"output"` // comma separated sinks
}

// Load reads configuration from file and environment.
// Priority: environment > config file > defaults
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("fixtures.source", FixtureSourceFile)
	v.SetDefault("fixtures.dir", "./data")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "jadwal_guru")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Jakarta")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.secret", "")
	v.SetDefault("session.durable_store", SessionStoreCookie)
	v.SetDefault("session.remember_ttl", "720h")
	v.SetDefault("session.cookie.secure", false)
	v.SetDefault("session.cookie.same_site", "Lax")
	v.SetDefault("session.cookie.domain", "")

	v.SetDefault("auth.login_delay", "1s")
	v.SetDefault("auth.login_rate_limit", 10)

	v.SetDefault("schedule.timezone", "Asia/Jakarta")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	v.SetEnvPrefix("JADWAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// no config file: defaults and environment only
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings the service cannot run without
func (c *Config) Validate() error {
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("invalid config: session.secret must be at least 32 characters")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be within 1-65535")
	}
	switch c.Fixtures.Source {
	case FixtureSourceFile:
		if c.Fixtures.Dir == "" {
			return fmt.Errorf("invalid config: fixtures.dir must not be empty")
		}
	case FixtureSourcePostgres:
	default:
		return fmt.Errorf("invalid config: unknown fixtures.source %q", c.Fixtures.Source)
	}
	switch c.Session.DurableStore {
	case SessionStoreCookie:
	case SessionStoreRedis:
		if !c.Redis.Enabled {
			return fmt.Errorf("invalid config: session.durable_store=redis requires redis.enabled")
		}
	default:
		return fmt.Errorf("invalid config: unknown session.durable_store %q", c.Session.DurableStore)
	}
	return nil
}
