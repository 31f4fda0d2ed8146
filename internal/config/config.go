package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
	// Endpoint overrides the account-derived R2 endpoint, e.g. for MinIO or plain S3.
	Endpoint string
}

// Enabled reports whether enough settings are present to talk to the bucket.
func (c R2Config) Enabled() bool {
	return c.Bucket != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" &&
		(c.AccountID != "" || c.Endpoint != "")
}

type DatabaseConfig struct {
	Driver string // memory, postgres or sqlite
	URL    string
}

type SessionConfig struct {
	Driver       string // memory or redis
	RedisURL     string
	CookieName   string
	TTL          time.Duration
	CookieSecure bool
}

type AdminConfig struct {
	Username string
	Password string
	// PasswordMode is plaintext or bcrypt.
	PasswordMode string
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	CORSOrigins   string
	BodyLimitMB   int
	SeedDefaults  bool
	NATSURL       string

	Database DatabaseConfig
	Session  SessionConfig
	Admin    AdminConfig
	Email    EmailConfig
	Log      LogConfig
	R2       R2Config
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("APP_ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5000"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:5173"),
		BodyLimitMB:   getInt("BODY_LIMIT_MB", 10),
		SeedDefaults:  getBool("SEED_DEFAULTS", true),
		NATSURL:       getEnv("NATS_URL", ""),
	}

	cfg.Database.Driver = strings.ToLower(getEnv("STORE_DRIVER", "memory"))
	cfg.Database.URL = getEnv("DATABASE_URL", "")

	cfg.Session.Driver = strings.ToLower(getEnv("SESSION_DRIVER", "memory"))
	cfg.Session.RedisURL = getEnv("REDIS_URL", "redis://localhost:6379/0")
	cfg.Session.CookieName = getEnv("SESSION_COOKIE_NAME", "ttravel.sid")
	cfg.Session.TTL = getDuration("SESSION_TTL", 24*time.Hour)
	cfg.Session.CookieSecure = getBool("COOKIE_SECURE", false)

	cfg.Admin.Username = getEnv("ADMIN_USERNAME", "admin")
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", "changeme")
	cfg.Admin.PasswordMode = strings.ToLower(getEnv("PASSWORD_MODE", "plaintext"))

	cfg.Email.ResendAPIKey = getEnv("RESEND_API_KEY", "")
	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", "")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "TTravel Hospitality")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.File = getEnv("LOG_FILE", "")
	cfg.Log.MaxSizeMB = getInt("LOG_MAX_SIZE_MB", 50)
	cfg.Log.MaxBackups = getInt("LOG_MAX_BACKUPS", 5)
	cfg.Log.MaxAgeDays = getInt("LOG_MAX_AGE_DAYS", 28)

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")
	cfg.R2.Endpoint = os.Getenv("R2_ENDPOINT")

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
