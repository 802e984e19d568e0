// Package config loads server settings from the environment and an optional
// YAML file.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/kyrah/portfolio/internal/contact"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

const (
	DeliveryLog  = "log"
	DeliverySMTP = "smtp"
)

// WriteTimeout bounds how long the server may take to answer a request.
// The contact submit delay is served inside it and must stay shorter.
const WriteTimeout = 30 * time.Second

type Config struct {
	Addr         string          `yaml:"addr"`
	Mode         string          `yaml:"mode"`
	DatabasePath string          `yaml:"database_path"`
	ContentPath  string          `yaml:"content_path"`
	Contact      ContactConfig   `yaml:"contact"`
	Sessions     SessionsConfig  `yaml:"sessions"`
	Admin        AdminConfig     `yaml:"admin"`
	Analytics    AnalyticsConfig `yaml:"analytics"`
}

type ContactConfig struct {
	SubmitDelay time.Duration      `yaml:"submit_delay"`
	Delivery    string             `yaml:"delivery"`
	SMTP        contact.SMTPConfig `yaml:"smtp"`
}

type SessionsConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// PasswordHash is a bcrypt hash and takes precedence over Password.
	PasswordHash string        `yaml:"password_hash"`
	Secret       string        `yaml:"secret"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// Enabled reports whether any admin credential is configured.
func (a AdminConfig) Enabled() bool {
	return a.Password != "" || a.PasswordHash != ""
}

type AnalyticsConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Retention time.Duration `yaml:"retention"`
}

// Load builds the config from environment defaults and, when path is not
// empty, overlays the YAML file at path.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:         addrFromPort(getEnv("PORT", "8080")),
		Mode:         getEnv("GIN_MODE", gin.ReleaseMode),
		DatabasePath: getEnv("PORTFOLIO_DB", "portfolio.db"),
		ContentPath:  os.Getenv("PORTFOLIO_CONTENT"),
		Contact: ContactConfig{
			SubmitDelay: getDuration("CONTACT_SUBMIT_DELAY", contact.DefaultDelay),
			Delivery:    getEnv("CONTACT_DELIVERY", DeliveryLog),
			SMTP: contact.SMTPConfig{
				Host: getEnv("SMTP_HOST", "smtp.gmail.com"),
				Port: getEnv("SMTP_PORT", "587"),
				User: os.Getenv("SMTP_USER"),
				Pass: os.Getenv("SMTP_PASS"),
				To:   os.Getenv("TO_EMAIL"),
			},
		},
		Sessions: SessionsConfig{
			TTL:           24 * time.Hour,
			SweepInterval: 10 * time.Minute,
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     os.Getenv("ADMIN_PASSWORD"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			Secret:       os.Getenv("ADMIN_SECRET"),
			TokenTTL:     getDuration("ADMIN_TOKEN_TTL", 24*time.Hour),
		},
		Analytics: AnalyticsConfig{
			Enabled:   getBool("ANALYTICS_ENABLED", true),
			Retention: 365 * 24 * time.Hour,
		},
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if cfg.Admin.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.Admin.Secret = secret
	}

	return cfg, nil
}

// Validate checks the config for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalid)
	}
	switch c.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	}
	if c.Contact.SubmitDelay < 0 {
		return fmt.Errorf("%w: contact.submit_delay must not be negative", ErrInvalid)
	}
	if c.Contact.SubmitDelay >= WriteTimeout {
		return fmt.Errorf("%w: contact.submit_delay must be shorter than the %s write timeout", ErrInvalid, WriteTimeout)
	}
	switch c.Contact.Delivery {
	case DeliveryLog:
	case DeliverySMTP:
		s := c.Contact.SMTP
		if s.Host == "" || s.Port == "" || s.To == "" {
			return fmt.Errorf("%w: smtp delivery needs host, port and recipient", ErrInvalid)
		}
		if s.User == "" || s.Pass == "" {
			return fmt.Errorf("%w: SMTP credentials not configured", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown contact delivery %q", ErrInvalid, c.Contact.Delivery)
	}
	if c.Sessions.TTL <= 0 || c.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("%w: sessions.ttl and sessions.sweep_interval must be positive", ErrInvalid)
	}
	if c.Admin.Enabled() && c.Admin.Username == "" {
		return fmt.Errorf("%w: admin.username is empty", ErrInvalid)
	}
	if c.Admin.TokenTTL <= 0 {
		return fmt.Errorf("%w: admin.token_ttl must be positive", ErrInvalid)
	}
	if len(c.Admin.Secret) < 16 {
		return fmt.Errorf("%w: admin.secret must be at least 16 characters", ErrInvalid)
	}
	if c.Analytics.Enabled {
		if c.DatabasePath == "" {
			return fmt.Errorf("%w: database_path is empty", ErrInvalid)
		}
		if c.Analytics.Retention <= 0 {
			return fmt.Errorf("%w: analytics.retention must be positive", ErrInvalid)
		}
	}
	return nil
}

// addrFromPort accepts either a bare port, as the PORT convention has it,
// or a full listen address.
func addrFromPort(port string) string {
	if _, err := strconv.Atoi(port); err == nil {
		return ":" + port
	}
	return port
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate admin secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
