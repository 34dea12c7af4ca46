package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testSecret = "test-session-secret-for-unit-testing-2026"

func TestLoad_DefaultsWithEnvSecret(t *testing.T) {
	t.Setenv("JADWAL_SESSION_SECRET", testSecret)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Auth.LoginDelay != time.Second {
		t.Errorf("expected default login delay 1s, got %v", cfg.Auth.LoginDelay)
	}
	if cfg.Session.RememberTTL != 720*time.Hour {
		t.Errorf("expected remember ttl 720h, got %v", cfg.Session.RememberTTL)
	}
	if cfg.Fixtures.Source != FixtureSourceFile || cfg.Fixtures.Dir != "./data" {
		t.Errorf("unexpected fixtures config: %+v", cfg.Fixtures)
	}
	if cfg.Session.Secret != testSecret {
		t.Errorf("env should override secret, got %q", cfg.Session.Secret)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Fixtures: FixturesConfig{Source: FixtureSourceFile, Dir: "./data"},
			Session:  SessionConfig{Secret: testSecret, DurableStore: SessionStoreCookie},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"short secret", func(c *Config) { c.Session.Secret = "short" }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"unknown source", func(c *Config) { c.Fixtures.Source = "mysql" }, true},
		{"empty dir", func(c *Config) { c.Fixtures.Dir = "" }, true},
		{"postgres source", func(c *Config) { c.Fixtures.Source = FixtureSourcePostgres }, false},
		{"redis store without redis", func(c *Config) { c.Session.DurableStore = SessionStoreRedis }, true},
		{"redis store with redis", func(c *Config) {
			c.Session.DurableStore = SessionStoreRedis
			c.Redis.Enabled = true
		}, false},
		{"unknown store", func(c *Config) { c.Session.DurableStore = "memcached" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestScheduleLocation_Fallback(t *testing.T) {
	c := &ScheduleConfig{Timezone: "Not/AZone"}
	if c.Location() != time.UTC {
		t.Error("invalid timezone should fall back to UTC")
	}
}
