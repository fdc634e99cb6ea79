package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"snookerclock/internal/ui/preferences"
)

func TestApplyOverridesPrecedence(t *testing.T) {
	settings := preferences.DefaultSettings()
	settings.SoundDir = "/from/file"

	env := map[string]string{
		envLogLevel: "debug",
		envSoundDir: "/from/env",
	}
	lookup := func(key string) string { return env[key] }

	resolved := applyOverrides(settings, lookup, overrides{})
	assert.Equal(t, "debug", resolved.LogLevel)
	assert.Equal(t, "/from/env", resolved.SoundDir)
	assert.False(t, resolved.Fullscreen)

	level := "warn"
	dir := "/from/flag"
	fullscreen := true
	resolved = applyOverrides(settings, lookup, overrides{
		logLevel:   &level,
		soundDir:   &dir,
		fullscreen: &fullscreen,
	})
	assert.Equal(t, "warn", resolved.LogLevel)
	assert.Equal(t, "/from/flag", resolved.SoundDir)
	assert.True(t, resolved.Fullscreen)
	assert.Equal(t, settings.Volume, resolved.Volume)
}

func TestApplyOverridesKeepsFileWithoutEnv(t *testing.T) {
	settings := preferences.DefaultSettings()
	settings.SoundDir = "/from/file"

	resolved := applyOverrides(settings, func(string) string { return "" }, overrides{})

	assert.Equal(t, settings, resolved)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("loud"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}

func TestRootCommandFlags(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"log-level", "sound-dir", "fullscreen"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	tui, _, err := root.Find([]string{"tui"})
	assert.NoError(t, err)
	assert.Equal(t, "tui", tui.Name())
}
