package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snookerclock/internal/ui/preferences"
)

func TestLoadSettingsFileMissingReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "nope", settingsFileName))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SnookerClock", settingsFileName)
	settings := preferences.Settings{
		Volume:     0.45,
		Muted:      true,
		Fullscreen: true,
		SoundDir:   "/opt/cues",
		LogLevel:   "debug",
	}

	require.NoError(t, SaveSettingsFile(path, settings))
	loaded, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, settings, loaded)
}

func TestOutOfRangeVolumeIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("volume_percent: 250\nmuted: true\n"), 0o644))

	loaded, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, preferences.DefaultSettings().Volume, loaded.Volume)
	assert.True(t, loaded.Muted)
	assert.Equal(t, "info", loaded.LogLevel)
}

func TestZeroVolumeIsKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("volume_percent: 0\n"), 0o644))

	loaded, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, loaded.Volume)
}

func TestMalformedSettingsReturnDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("muted: [oops"), 0o644))

	loaded, err := LoadSettingsFile(path)
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded)
}

func TestLoadSettingsUsesUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	require.NoError(t, SaveSettings("SnookerClock", preferences.Settings{Volume: 1, LogLevel: "warn"}))
	loaded, err := LoadSettings("SnookerClock")
	require.NoError(t, err)
	assert.Equal(t, "warn", loaded.LogLevel)
	assert.Equal(t, 1.0, loaded.Volume)
}
