// Package config handles loading application configuration from environment
// variables. All config is centralized here so no other package reads env
// vars directly. Sensible defaults are provided for development.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Config holds all application configuration. Populated from environment
// variables at startup. Passed to other packages via dependency injection.
type Config struct {
	// Env is the runtime environment: "development" or "production".
	Env string

	// Port is the HTTP listen port (default: 8080).
	Port int

	// BaseURL is the public-facing URL used for links in emails.
	BaseURL string

	// AllowedOrigins lists the origins permitted to call the API with
	// credentials (the Lifelog frontend).
	AllowedOrigins []string

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	LogLevel string

	// Database holds MariaDB connection settings.
	Database DatabaseConfig

	// Redis holds Redis connection settings.
	Redis RedisConfig

	// Auth holds authentication-related settings.
	Auth AuthConfig

	// Mail holds outbound SMTP settings for verification and reset emails.
	Mail MailConfig

	// Notify holds push-notification and reminder-dispatch settings.
	Notify NotifyConfig
}

// DatabaseConfig holds MariaDB connection parameters. Individual fields
// (Host, User, Password, Name) are read from separate env vars so container
// orchestrators can manage each independently. If DATABASE_URL is set, it
// takes precedence over the individual fields.
type DatabaseConfig struct {
	// Host is the MariaDB address in host:port format (default: "localhost:3306").
	// If no port is specified, 3306 is appended automatically.
	Host string

	// User is the MariaDB username (default: "lifelog").
	User string

	// Password is the MariaDB password (default: "lifelog").
	Password string

	// Name is the database name (default: "lifelog").
	Name string

	// MigrationsPath is the directory holding SQL migration files.
	MigrationsPath string

	// MaxOpenConns caps concurrent connections in the pool.
	MaxOpenConns int

	// MaxIdleConns caps idle connections kept in the pool.
	MaxIdleConns int

	// ConnMaxLifetime bounds how long a pooled connection may be reused.
	ConnMaxLifetime time.Duration

	// dsnOverride is set when DATABASE_URL is provided, bypassing individual fields.
	dsnOverride string
}

// DSN builds the MySQL driver DSN from the individual connection fields,
// or returns DATABASE_URL verbatim when set. parseTime=true makes the
// driver scan DATETIME columns into time.Time.
func (d DatabaseConfig) DSN() string {
	if d.dsnOverride != "" {
		return d.dsnOverride
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = ensurePort(d.Host, "3306")
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.DBName = d.Name
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	return cfg.FormatDSN()
}

// ensurePort appends the default port when the host has none.
func ensurePort(host, defaultPort string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, defaultPort)
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., "redis://localhost:6379").
	URL string
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	// SessionTTL is how long sessions last before expiring.
	SessionTTL time.Duration

	// VerificationTTL is how long email verification codes stay valid.
	VerificationTTL time.Duration

	// ResetTTL is how long password reset tokens stay valid.
	ResetTTL time.Duration
}

// MailConfig holds SMTP settings for outbound mail. When Host is empty the
// server runs with a log-only sender (development mode).
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// IsConfigured reports whether an SMTP host has been provided.
func (m MailConfig) IsConfigured() bool {
	return m.Host != ""
}

// NotifyConfig holds reminder-dispatch settings.
type NotifyConfig struct {
	// CronSecret is the static bearer secret protecting the batch
	// dispatch endpoints. Required in production.
	CronSecret string

	// FCMCredentialsFile is the path to a Firebase service account JSON
	// file. When empty, push sending is disabled (nop sender).
	FCMCredentialsFile string
}

// Load reads configuration from environment variables with sensible defaults.
// Returns an error if required variables are missing in production.
func Load() (*Config, error) {
	cfg := &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnvInt("PORT", 8080),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		LogLevel:       getEnv("LOG_LEVEL", "debug"),

		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost:3306"),
			User:            getEnv("DB_USER", "lifelog"),
			Password:        getEnv("DB_PASSWORD", "lifelog"),
			Name:            getEnv("DB_NAME", "lifelog"),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "./db/migrations"),
			dsnOverride:     getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},

		Auth: AuthConfig{
			SessionTTL:      getEnvDuration("SESSION_TTL", 720*time.Hour),
			VerificationTTL: getEnvDuration("VERIFICATION_TTL", 24*time.Hour),
			ResetTTL:        getEnvDuration("RESET_TTL", 1*time.Hour),
		},

		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "Lifelog <no-reply@localhost>"),
		},

		Notify: NotifyConfig{
			CronSecret:         getEnv("CRON_SECRET", ""),
			FCMCredentialsFile: getEnv("FCM_CREDENTIALS_FILE", ""),
		},
	}

	// Validate required fields in production. Case-insensitive check catches
	// common variants like "Production", "prod", etc.
	envLower := strings.ToLower(cfg.Env)
	if envLower == "production" || envLower == "prod" {
		if cfg.Notify.CronSecret == "" {
			return nil, fmt.Errorf("CRON_SECRET is required in production")
		}
		if len(cfg.Notify.CronSecret) < 32 {
			return nil, fmt.Errorf("CRON_SECRET must be at least 32 characters in production")
		}
		if !cfg.Mail.IsConfigured() {
			return nil, fmt.Errorf("SMTP_HOST is required in production (verification emails cannot be sent without it)")
		}
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Env)
	return env == "development" || env == "dev"
}

// --- Helper functions for reading environment variables ---

// getEnv reads a string env var or returns the default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt reads an integer env var or returns the default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration reads a duration env var (e.g., "720h") or returns the default.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// splitList parses a comma-separated env value into trimmed entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
