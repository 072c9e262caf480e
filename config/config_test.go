package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSchedulerConfig(t *testing.T) {
	path := writeConfig(t, `
port: 8080
scheduler:
  round_robin:
    time_quantum: 3
`)
	cfg, err := LoadSchedulerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 3, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, 250, cfg.ReplayTickMillis)
}

func TestLoadSchedulerConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, "port: 8080\n")
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "5")
	t.Setenv("SCHEDULER_PORT", "7000")

	cfg, err := LoadSchedulerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 5, cfg.RoundRobinTimeQuantum)
}

func TestLoadSchedulerConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadSchedulerConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSchedulerConfig_DefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadSchedulerConfig("")
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, 2, cfg.RoundRobinTimeQuantum)
}
