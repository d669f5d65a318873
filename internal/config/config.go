// Package config loads application configuration from environment variables
// into a single struct constructed once at process start.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service. The write path
// (uploads) requires storage credentials; the read path tolerates their
// absence and degrades to empty results.
type Config struct {
	Port        string
	AppEnv      string
	DatabaseURL string

	// Object storage (S3-compatible: MinIO locally, any S3 provider in production)
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageBucket     string
	StorageUseSSL     bool
	StoragePublicBase string // browser-accessible base URL, e.g. "http://localhost:9000/images"

	// Optional HS256 secret gating the upload endpoint. Empty means anonymous
	// uploads are allowed.
	UploadAuthSecret string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, reading from environment")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "dev")),
		DatabaseURL: getEnv("DATABASE_URL", "picvault.db"),

		StorageEndpoint:   os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey:  os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey:  os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "images"),
		StorageUseSSL:     getEnv("STORAGE_USE_SSL", "false") == "true",
		StoragePublicBase: os.Getenv("STORAGE_PUBLIC_BASE"),

		UploadAuthSecret: os.Getenv("UPLOAD_AUTH_SECRET"),
	}
}

// StorageConfigured reports whether the blob-store credentials are present.
// Reads work without them; writes must hard-fail.
func (c *Config) StorageConfigured() bool {
	return c.StorageEndpoint != "" && c.StorageAccessKey != "" && c.StorageSecretKey != ""
}

// Validate rejects configurations that cannot run at all. Missing storage
// credentials are allowed (read-only deployment state), a missing bucket name
// is not.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.StorageBucket == "" {
		return fmt.Errorf("STORAGE_BUCKET must not be empty")
	}
	if c.IsProdLike() && !c.StorageConfigured() {
		return fmt.Errorf("in prod/release storage credentials must be set")
	}
	return nil
}

// IsProdLike returns true for production-class environments.
func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
