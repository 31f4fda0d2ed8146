package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("PASSWORD_MODE", "")

	cfg := LoadConfig()

	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "plaintext", cfg.Admin.PasswordMode)
	assert.True(t, cfg.SeedDefaults)
	assert.False(t, cfg.R2.Enabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("BODY_LIMIT_MB", "3")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("APP_ENV", "production")
	t.Setenv("R2_BUCKET", "gallery")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_ENDPOINT", "http://localhost:9000")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 90*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 3, cfg.BodyLimitMB)
	assert.True(t, cfg.Session.CookieSecure)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.R2.Enabled())
}

func TestMalformedValuesFallBack(t *testing.T) {
	t.Setenv("BODY_LIMIT_MB", "lots")
	t.Setenv("SESSION_TTL", "a day")

	cfg := LoadConfig()

	assert.Equal(t, 10, cfg.BodyLimitMB)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}
