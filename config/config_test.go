package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 300, cfg.Profiler.HistorySize)
	assert.Equal(t, 500, cfg.Controller.ScaleUpEntities)
	assert.Equal(t, 100, cfg.Controller.ScaleDownEntities)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_OverlaysOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[profiler]
history_size = 600

[logging]
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.Profiler.HistorySize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 500, cfg.Controller.ScaleUpEntities)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
