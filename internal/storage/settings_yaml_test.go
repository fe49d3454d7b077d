package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepshow/internal/config"
	"stepshow/internal/storage"
)

func TestLoadSettingsReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings, err := storage.LoadSettings("StepShowTest")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := config.Settings{
		TickInterval: 45 * time.Millisecond,
		Fullscreen:   false,
		ExportWidth:  1280,
	}
	require.NoError(t, storage.SaveSettings("StepShowTest", saved))

	loaded, err := storage.LoadSettings("StepShowTest")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadSettingsIgnoresOutOfRangeValues(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "StepShowTest")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	raw := "tick_interval_millis: 0\nfullscreen: true\nexport_width: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(raw), 0o644))

	loaded, err := storage.LoadSettings("StepShowTest")
	require.NoError(t, err)
	defaults := config.DefaultSettings()
	assert.Equal(t, defaults.TickInterval, loaded.TickInterval)
	assert.Equal(t, defaults.ExportWidth, loaded.ExportWidth)
	assert.True(t, loaded.Fullscreen)
}

func TestLoadSettingsRejectsMalformedYaml(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "StepShowTest")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("tick: ["), 0o644))

	_, err := storage.LoadSettings("StepShowTest")
	require.Error(t, err)
}
