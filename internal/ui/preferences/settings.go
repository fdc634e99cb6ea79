package preferences

import (
	"snookerclock/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Volume     float64
	Muted      bool
	Fullscreen bool
	SoundDir   string
	LogLevel   string
}

// DefaultSettings returns default settings for SnookerClock.
func DefaultSettings() Settings {
	return Settings{
		Volume:     0.8,
		Muted:      false,
		Fullscreen: false,
		LogLevel:   "info",
	}
}

// AudioConfig converts settings to AudioConfig.
func (settings Settings) AudioConfig() model.AudioConfig {
	return model.AudioConfig{
		Volume:   settings.Volume,
		Muted:    settings.Muted,
		SoundDir: settings.SoundDir,
	}
}
