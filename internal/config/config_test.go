package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/sluice/internal/config"
	"github.com/aretw0/sluice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Search.Horizon)
}

func TestLoad_RequiredMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := write(t, "sluice.yaml", `
search:
  horizon: 26
  agents: 2
  scorer: optimistic
log:
  level: debug
redis:
  addr: localhost:6379
  ttl: 10m
`)

	cfg, err := config.Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, domain.Request{Start: "AA", Horizon: 26, Agents: 2, BeamWidth: 1000, Scorer: "optimistic"}, cfg.Search)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "sluice:", cfg.Redis.Prefix)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "sluice.json", `{"search": {"start": "A", "horizon": 3}, "http": {"addr": ":9000"}}`)

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "A", cfg.Search.Start)
	assert.Equal(t, 3, cfg.Search.Horizon)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":   "search: [",
		"bad agents": "search:\n  agents: 3\n",
		"bad scorer": "search:\n  scorer: greedy\n",
		"bad format": "log:\n  format: xml\n",
		"bad ttl":    "redis:\n  ttl: -1s\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, "sluice.yaml", content), true)
			assert.Error(t, err)
		})
	}
}
