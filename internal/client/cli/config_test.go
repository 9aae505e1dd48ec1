package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SCHOLAR_SERVER_URL", "SCHOLAR_SESSION_FILE", "SCHOLAR_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5000", cfg.ServerURL)
	require.Equal(t, 15*time.Second, cfg.Timeout)
	require.Equal(t, "session.json", filepath.Base(cfg.SessionFile))
	require.Equal(t, "scholarsync", filepath.Base(filepath.Dir(cfg.SessionFile)))
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	t.Setenv("SCHOLAR_SERVER_URL", "https://scholar.example.com")
	t.Setenv("SCHOLAR_SESSION_FILE", path)
	t.Setenv("SCHOLAR_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://scholar.example.com", cfg.ServerURL)
	require.Equal(t, path, cfg.SessionFile)
	require.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	t.Setenv("SCHOLAR_TIMEOUT", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
}
