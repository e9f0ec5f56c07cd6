package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "hf_encrypted_key", cfg.StorageSlotKey)
				assert.Equal(t, 100000, cfg.PBKDF2Iterations)
				assert.Equal(t, "aes-gcm", cfg.Algorithm)
				assert.True(t, cfg.ValidateOnSet)
				assert.False(t, cfg.AssumeEncrypted)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "tokenvault", cfg.MetricsNamespace)
				assert.NotEmpty(t, cfg.StoragePath)
			},
		},
		{
			name: "load custom storage configuration",
			envVars: map[string]string{
				"STORAGE_PATH":     "/tmp/custom/store.json",
				"STORAGE_SLOT_KEY": "other_slot",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/custom/store.json", cfg.StoragePath)
				assert.Equal(t, "other_slot", cfg.StorageSlotKey)
			},
		},
		{
			name: "load custom key derivation configuration",
			envVars: map[string]string{
				"PBKDF2_ITERATIONS":   "250000",
				"SECRETBOX_ALGORITHM": "chacha20-poly1305",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 250000, cfg.PBKDF2Iterations)
				assert.Equal(t, "chacha20-poly1305", cfg.Algorithm)
			},
		},
		{
			name: "load custom save behavior",
			envVars: map[string]string{
				"VALIDATE_ON_SET":  "false",
				"ASSUME_ENCRYPTED": "true",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.ValidateOnSet)
				assert.True(t, cfg.AssumeEncrypted)
			},
		},
		{
			name: "load custom metrics configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":   "true",
				"METRICS_NAMESPACE": "vault",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "vault", cfg.MetricsNamespace)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg := Load()
			tt.validate(t, cfg)
		})
	}
}

func TestDefaultStoragePath(t *testing.T) {
	path := defaultStoragePath()
	assert.NotEmpty(t, path)

	home, err := os.UserHomeDir()
	if err == nil {
		assert.Contains(t, path, home)
	}
}
