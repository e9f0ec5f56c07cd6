// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// StoragePath is the path of the JSON file backing the key-value store.
	StoragePath string
	// StorageSlotKey is the fixed slot key under which the encrypted token blob is stored.
	StorageSlotKey string

	// PBKDF2Iterations is the PBKDF2 work factor used for key derivation.
	// Higher values slow down offline brute-force attacks at the cost of latency.
	PBKDF2Iterations int
	// Algorithm is the AEAD algorithm used for new encryptions
	// (e.g., "aes-gcm", "chacha20-poly1305").
	Algorithm string

	// ValidateOnSet indicates whether token format validation runs before storing.
	// Validation is advisory: a non-conforming token logs a warning but is still stored.
	ValidateOnSet bool
	// AssumeEncrypted indicates whether values passed to Save are treated as
	// already-encoded blobs and stored without re-encrypting.
	AssumeEncrypted bool

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Storage
		StoragePath:    env.GetString("STORAGE_PATH", defaultStoragePath()),
		StorageSlotKey: env.GetString("STORAGE_SLOT_KEY", "hf_encrypted_key"),

		// Key derivation and encryption
		PBKDF2Iterations: env.GetInt("PBKDF2_ITERATIONS", 100000),
		Algorithm:        env.GetString("SECRETBOX_ALGORITHM", "aes-gcm"),

		// Save behavior
		ValidateOnSet:   env.GetBool("VALIDATE_ON_SET", true),
		AssumeEncrypted: env.GetBool("ASSUME_ENCRYPTED", false),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "tokenvault"),
	}
}

// defaultStoragePath returns the default location of the token store file,
// preferring the user home directory and falling back to the working directory.
func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tokenvault.json"
	}
	return filepath.Join(home, ".tokenvault", "tokenvault.json")
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
