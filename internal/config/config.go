package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Auth (optional: verify identity provider access tokens)
	AuthJWTSecret string
	AuthJWTIssuer string
	AuthJWTExpiry time.Duration

	// Rate limiting for write endpoints
	RateLimitRequests int
	RateLimitWindow   time.Duration
	TrustProxyHeaders bool

	// Analytics
	AnalyticsConcurrency int

	// Observability (optional)
	SentryDSN string

	// Storage for data exports (optional, S3-compatible)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string // Optional: for S3-compatible services (MinIO, R2, etc.)
	S3PresignExpiry time.Duration
	ExportKeyPrefix string

	// Server
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Winter Arc"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/winterarc.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Auth
		AuthJWTSecret: envString("AUTH_JWT_SECRET", ""),
		AuthJWTIssuer: envString("AUTH_JWT_ISSUER", ""),
		AuthJWTExpiry: envDuration("AUTH_JWT_EXPIRY", 24*time.Hour),

		// Rate limiting
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   envDuration("RATE_LIMIT_WINDOW", time.Minute),
		TrustProxyHeaders: envBool("TRUST_PROXY_HEADERS", true),

		// Analytics
		AnalyticsConcurrency: envInt("ANALYTICS_CONCURRENCY", 4),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage (exports fall back to direct download without a bucket)
		S3Region:        envString("S3_REGION", "us-east-1"),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", time.Hour),
		ExportKeyPrefix: envString("EXPORT_KEY_PREFIX", "exports"),

		// Server
		ShutdownTimeout:   envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ReadHeaderTimeout: envDuration("READ_HEADER_TIMEOUT", 5*time.Second),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction refuses to serve unauthenticated writes in production.
func validateProduction(cfg *Config) {
	if cfg.AuthJWTSecret == "" {
		slog.Error("production deployment requires AUTH_JWT_SECRET",
			"hint", "set APP_ENV=development to trust the userId parameter")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// AuthEnabled reports whether bearer tokens are verified.
func (c *Config) AuthEnabled() bool {
	return c.AuthJWTSecret != ""
}

// StorageEnabled reports whether exports are uploaded to a bucket.
func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// Secrets and credentials are excluded. Safe to log.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:              c.AppName,
		AppEnv:               c.AppEnv,
		Port:                 c.Port,
		DBDriver:             c.DBDriver,
		AuthJWTIssuer:        c.AuthJWTIssuer,
		AuthJWTExpiry:        c.AuthJWTExpiry,
		RateLimitRequests:    c.RateLimitRequests,
		RateLimitWindow:      c.RateLimitWindow,
		TrustProxyHeaders:    c.TrustProxyHeaders,
		AnalyticsConcurrency: c.AnalyticsConcurrency,
		S3Region:             c.S3Region,
		S3Bucket:             c.S3Bucket,
		S3Endpoint:           c.S3Endpoint,
		S3PresignExpiry:      c.S3PresignExpiry,
		ExportKeyPrefix:      c.ExportKeyPrefix,
		ShutdownTimeout:      c.ShutdownTimeout,
		ReadHeaderTimeout:    c.ReadHeaderTimeout,
	}
}
