package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Adwait10-prog/Rian-Audio-Editor2/app"
	"github.com/Adwait10-prog/Rian-Audio-Editor2/config"
	"github.com/Adwait10-prog/Rian-Audio-Editor2/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestInitLogger(t *testing.T) {
	t.Run("default json logger", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "info")
		t.Setenv("LOG_FORMAT", "json")

		logger, err := initLogger()
		require.NoError(t, err)
		require.NotNil(t, logger)
		defer logger.Sync()
	})

	t.Run("development console logger", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "console")

		logger, err := initLogger()
		require.NoError(t, err)
		require.NotNil(t, logger)
		defer logger.Sync()
	})

	t.Run("bogus level is rejected", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "yelling")

		_, err := initLogger()
		assert.Error(t, err)
	})
}

func TestServerWiring(t *testing.T) {
	base := t.TempDir()
	t.Setenv("UPLOAD_DIR", filepath.Join(base, "uploads"))
	t.Setenv("CACHE_DIR", filepath.Join(base, "cache"))

	cfg, err := config.New()
	require.NoError(t, err)

	deps, err := app.NewDependencies(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	server := httptest.NewServer(routes.SetupRoutes(deps))
	defer server.Close()

	t.Run("health endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var envelope map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "OK", envelope["data"])
	})

	t.Run("unknown route returns an error envelope", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var envelope map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, false, envelope["success"])
	})

	t.Run("storage directories are created", func(t *testing.T) {
		assert.DirExists(t, filepath.Join(base, "uploads"))
		assert.DirExists(t, filepath.Join(base, "cache"))
	})
}
