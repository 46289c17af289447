package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":    "https://hbnb.example/api/v1",
		"session_db_path": "",
		"token_ttl":       "24h",
		"cookie_name":     "jwt",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{SessionDBPath: "x.db", CookiePath: "/"}
		parseJson(cfg)

		assert.Equal(t, "https://hbnb.example/api/v1", cfg.APIBaseURL)
		assert.Equal(t, "", cfg.SessionDBPath, "explicit empty value switches to memory")
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, "jwt", cfg.CookieName)
		assert.Equal(t, "/", cfg.CookiePath, "missing keys are kept")
	})

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-c=" + pathFlag}

		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, "jwt", cfg.CookieName)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			APIBaseURL: "http://defaults:1234",
			TokenTTL:   42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.TokenTTL)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
