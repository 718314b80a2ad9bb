package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable New reads so host environment leakage
// cannot skew the defaults cases.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "HOST", "PORT",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
		"UPLOAD_DIR", "CACHE_DIR",
		"ELEVENLABS_API_KEY", "ELEVENLABS_BASE_URL", "ELEVENLABS_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "development", cfg.Environment)
				assert.True(t, cfg.IsDevelopment())
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8081, cfg.Server.Port)
				assert.Equal(t, "0.0.0.0:8081", cfg.Server.Address())
				assert.Equal(t, "uploads", cfg.Storage.UploadDir)
				assert.Equal(t, "cache", cfg.Storage.CacheDir)
				assert.Equal(t, "1234", cfg.ElevenLabs.APIKey)
				assert.Equal(t, "https://api.elevenlabs.io", cfg.ElevenLabs.BaseURL)
				assert.Equal(t, 30*time.Second, cfg.ElevenLabs.Timeout)
			},
		},
		{
			name: "environment overrides",
			envVars: map[string]string{
				"ENVIRONMENT":        "production",
				"HOST":               "127.0.0.1",
				"PORT":               "9000",
				"UPLOAD_DIR":         "/tmp/uploads",
				"CACHE_DIR":          "/tmp/cache",
				"ELEVENLABS_API_KEY": "real-key",
				"ELEVENLABS_TIMEOUT": "5s",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.IsProduction())
				assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address())
				assert.Equal(t, "/tmp/uploads", cfg.Storage.UploadDir)
				assert.Equal(t, "real-key", cfg.ElevenLabs.APIKey)
				assert.Equal(t, 5*time.Second, cfg.ElevenLabs.Timeout)
			},
		},
		{
			name: "unparseable values fall back to defaults",
			envVars: map[string]string{
				"PORT":               "not-a-number",
				"ELEVENLABS_TIMEOUT": "soon",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8081, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.ElevenLabs.Timeout)
			},
		},
		{
			name: "port out of range fails validation",
			envVars: map[string]string{
				"PORT": "99999",
			},
			wantErr: true,
		},
		{
			name: "malformed base URL fails validation",
			envVars: map[string]string{
				"ELEVENLABS_BASE_URL": "not a url",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := New()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
