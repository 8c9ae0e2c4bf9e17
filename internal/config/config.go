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
	// Run pending migrations on startup. Disable when a deploy pipeline
	// applies them separately.
	DBAutoMigrate bool

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Uploads
	UploadDir        string
	PublicUploadPath string

	// Storage backend: "local" (default) or "s3"
	StorageDriver string

	// Storage - S3-compatible (MinIO, AWS S3, DigitalOcean Spaces, R2, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services

	// CORS
	CORSAllowOrigin string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return &Config{
		AppName: envString("APP_NAME", "York Realty"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8080"),

		DBDriver:      envString("DB_DRIVER", "sqlite"),
		DBConnection:  envString("DB_CONNECTION", "./data/yorkrealty.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		DBAutoMigrate: envBool("DB_AUTO_MIGRATE", true),

		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 72*time.Hour),

		UploadDir:        envString("UPLOAD_DIR", "./uploads"),
		PublicUploadPath: envString("PUBLIC_UPLOAD_PATH", "/uploads"),

		StorageDriver: envString("STORAGE_DRIVER", "local"),
		S3Region:      envString("S3_REGION", ""),
		S3Bucket:      envString("S3_BUCKET", ""),
		S3AccessKey:   envString("S3_ACCESS_KEY", ""),
		S3SecretKey:   envString("S3_SECRET_KEY", ""),
		S3Endpoint:    envString("S3_ENDPOINT", ""),

		CORSAllowOrigin: envString("CORS_ALLOW_ORIGIN", "*"),

		SentryDSN: envString("SENTRY_DSN", ""),
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
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

// Sanitized returns a copy of the config with only public/safe fields.
// Secrets and credentials are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:          c.AppName,
		AppEnv:           c.AppEnv,
		Port:             c.Port,
		PublicUploadPath: c.PublicUploadPath,
		S3Endpoint:       c.S3Endpoint,
	}
}
