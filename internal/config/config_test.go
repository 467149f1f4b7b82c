package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://hiroba.dqx.jp", cfg.Source.BaseURL)
	assert.Equal(t, 3, cfg.Source.Retry.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.BodyLock.StaleThreshold)
	assert.Equal(t, 20*time.Second, cfg.BodyLock.MaxWait)
	assert.Equal(t, 500*time.Millisecond, cfg.BodyLock.PollInterval)
	assert.Equal(t, 60*time.Second, cfg.TranslationLock.StaleThreshold)
	assert.Equal(t, 45*time.Second, cfg.TranslationLock.MaxWait)
	assert.Equal(t, 15*time.Minute, cfg.Scan.Interval)
	assert.Equal(t, 25, cfg.Scan.RecheckLimit)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "sekret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database:\n  host: localhost\n  password: ${TEST_DB_PASSWORD}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sekret", cfg.Database.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
