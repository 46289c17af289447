package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/apitest"
	"github.com/dmitrijs2005/hbnbclient/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, baseURL, dbPath string) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.APIBaseURL = baseURL
	c.SessionDBPath = dbPath
	return c
}

func TestNewApp_InvalidBaseURL(t *testing.T) {
	_, err := NewApp(context.Background(), testConfig(t, "ftp://nowhere", ""), strings.NewReader(""), &bytes.Buffer{}, nil)
	require.Error(t, err)
}

func TestNewApp_BadDatabasePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), []byte("x"), 0o600))
	bad := filepath.Join(dir, "file", "s.db")
	_, err := NewApp(context.Background(), testConfig(t, "http://127.0.0.1:5001/api/v1", bad), strings.NewReader(""), &bytes.Buffer{}, nil)
	require.Error(t, err)
}

func TestRun_ExitsOnCommand(t *testing.T) {
	api := apitest.New(t)
	var out bytes.Buffer

	app, err := NewApp(context.Background(), testConfig(t, api.BaseURL(), ""), strings.NewReader("help\nexit\n"), &out, nil)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Welcome to HBnB CLI")
	assert.Contains(t, s, "hbnb (unauthenticated index.html)> ")
	assert.Contains(t, s, "Bye!")
}

func TestNewApp_SessionSurvivesRestart(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	api := apitest.New(t)
	api.AddUser("ada@example.com", "secret", "Ada", "Lovelace")
	api.TokenTTL = 2 * time.Hour
	dbPath := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	first, err := NewApp(ctx, testConfig(t, api.BaseURL(), dbPath), strings.NewReader("ada@example.com\nsecret\n"), &bytes.Buffer{}, nil)
	require.NoError(t, err)
	require.NoError(t, first.Login(ctx))
	require.True(t, first.isLoggedIn(ctx))
	require.NoError(t, first.Close())

	second, err := NewApp(ctx, testConfig(t, api.BaseURL(), dbPath), strings.NewReader(""), &bytes.Buffer{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	assert.True(t, second.isLoggedIn(ctx))
}

func TestNewApp_CreatesDatabaseDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "session.db")

	app, err := NewApp(context.Background(), testConfig(t, "http://127.0.0.1:5001/api/v1", dbPath), strings.NewReader(""), &bytes.Buffer{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	_, err = os.Stat(dbPath)
	require.NoError(t, err)
}
