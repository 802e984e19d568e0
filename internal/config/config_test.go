package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyrah/portfolio/internal/config"
)

var envKeys = []string{
	"PORT", "GIN_MODE", "PORTFOLIO_DB", "PORTFOLIO_CONTENT",
	"CONTACT_SUBMIT_DELAY", "CONTACT_DELIVERY",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL",
	"ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH", "ADMIN_SECRET", "ADMIN_TOKEN_TTL",
	"ANALYTICS_ENABLED",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Empty(t, cfg.ContentPath)
	assert.Equal(t, 1500*time.Millisecond, cfg.Contact.SubmitDelay)
	assert.Equal(t, config.DeliveryLog, cfg.Contact.Delivery)
	assert.Equal(t, "smtp.gmail.com", cfg.Contact.SMTP.Host)
	assert.Equal(t, 24*time.Hour, cfg.Sessions.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Sessions.SweepInterval)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.False(t, cfg.Admin.Enabled())
	assert.Len(t, cfg.Admin.Secret, 64, "random secret generated")
	assert.True(t, cfg.Analytics.Enabled)
	assert.Equal(t, 8760*time.Hour, cfg.Analytics.Retention)

	require.NoError(t, cfg.Validate())
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("CONTACT_SUBMIT_DELAY", "10ms")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("ANALYTICS_ENABLED", "false")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, 10*time.Millisecond, cfg.Contact.SubmitDelay)
	assert.True(t, cfg.Admin.Enabled())
	assert.False(t, cfg.Analytics.Enabled)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:7000")

	path := writeFile(t, `
database_path: /var/lib/portfolio/analytics.db
contact:
  submit_delay: 250ms
sessions:
  ttl: 2h
admin:
  secret: 0123456789abcdef0123
analytics:
  retention: 720h
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.Addr, "env value kept when the file omits it")
	assert.Equal(t, "/var/lib/portfolio/analytics.db", cfg.DatabasePath)
	assert.Equal(t, 250*time.Millisecond, cfg.Contact.SubmitDelay)
	assert.Equal(t, config.DeliveryLog, cfg.Contact.Delivery)
	assert.Equal(t, 2*time.Hour, cfg.Sessions.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Sessions.SweepInterval)
	assert.Equal(t, "0123456789abcdef0123", cfg.Admin.Secret)
	assert.Equal(t, 720*time.Hour, cfg.Analytics.Retention)
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "sessions: [not, a, map]"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"empty addr", func(c *config.Config) { c.Addr = "" }},
		{"unknown mode", func(c *config.Config) { c.Mode = "staging" }},
		{"negative delay", func(c *config.Config) { c.Contact.SubmitDelay = -time.Second }},
		{"delay at write timeout", func(c *config.Config) { c.Contact.SubmitDelay = config.WriteTimeout }},
		{"delay past write timeout", func(c *config.Config) { c.Contact.SubmitDelay = time.Minute }},
		{"unknown delivery", func(c *config.Config) { c.Contact.Delivery = "pigeon" }},
		{"smtp without credentials", func(c *config.Config) {
			c.Contact.Delivery = config.DeliverySMTP
			c.Contact.SMTP.To = "me@example.com"
		}},
		{"smtp without recipient", func(c *config.Config) {
			c.Contact.Delivery = config.DeliverySMTP
			c.Contact.SMTP.User = "u"
			c.Contact.SMTP.Pass = "p"
		}},
		{"zero session ttl", func(c *config.Config) { c.Sessions.TTL = 0 }},
		{"admin without username", func(c *config.Config) {
			c.Admin.Password = "pw"
			c.Admin.Username = ""
		}},
		{"short secret", func(c *config.Config) { c.Admin.Secret = "short" }},
		{"zero retention", func(c *config.Config) { c.Analytics.Retention = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestValidate_DelayBelowWriteTimeout(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Contact.SubmitDelay = config.WriteTimeout - time.Second
	assert.NoError(t, cfg.Validate())
}

func TestValidate_SMTP(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTACT_DELIVERY", "smtp")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "app-password")
	t.Setenv("TO_EMAIL", "me@example.com")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_AnalyticsDisabledIgnoresDatabase(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Analytics.Enabled = false
	cfg.DatabasePath = ""
	assert.NoError(t, cfg.Validate())
}
