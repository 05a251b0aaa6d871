package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 2*time.Second, cfg.Cache.RefreshInterval)
	assert.Len(t, cfg.Scan.Roots, 3)
	assert.True(t, cfg.Executor.Shell, "expected shell execution policy to default to true")
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Cache.RefreshInterval)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "cache:\n  refresh_interval: 5s\nverbose: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Cache.RefreshInterval)
	assert.True(t, cfg.Verbose)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OMNIBAR_REFRESH_INTERVAL", "9s")
	t.Setenv("OMNIBAR_VERBOSE", "true")
	t.Setenv("OMNIBAR_EXECUTOR_SHELL", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9*time.Second, cfg.Cache.RefreshInterval)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Executor.Shell)
}
