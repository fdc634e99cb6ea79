package main

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"snookerclock/internal/storage"
	"snookerclock/internal/ui/preferences"
)

const (
	envLogLevel = "SNOOKERCLOCK_LOG_LEVEL"
	envSoundDir = "SNOOKERCLOCK_SOUND_DIR"
)

// overrides holds command line values. Nil fields were not set.
type overrides struct {
	logLevel   *string
	soundDir   *string
	fullscreen *bool
}

// loadSettings reads the settings file and layers the environment and the
// command line on top of it.
func loadSettings(flags overrides) preferences.Settings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Warn().Err(err).Msg("load settings, using defaults")
		settings = preferences.DefaultSettings()
	}
	return applyOverrides(settings, os.Getenv, flags)
}

func applyOverrides(settings preferences.Settings, lookup func(string) string, flags overrides) preferences.Settings {
	settings.LogLevel = getEnv(lookup, envLogLevel, settings.LogLevel)
	settings.SoundDir = getEnv(lookup, envSoundDir, settings.SoundDir)

	if flags.logLevel != nil {
		settings.LogLevel = *flags.logLevel
	}
	if flags.soundDir != nil {
		settings.SoundDir = *flags.soundDir
	}
	if flags.fullscreen != nil {
		settings.Fullscreen = *flags.fullscreen
	}
	return settings
}

func getEnv(lookup func(string) string, key, defaultValue string) string {
	if value := lookup(key); value != "" {
		return value
	}
	return defaultValue
}

// setupLogging points the global logger at out.
func setupLogging(level string, out io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, NoColor: out != os.Stderr})
	zerolog.SetGlobalLevel(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
