package model

import "time"

// CountdownConfig holds the start and reset values of a countdown, in seconds.
type CountdownConfig struct {
	Initial int
	Reset   int
}

// MatchConfig contains the fixed clock settings for a frame.
type MatchConfig struct {
	Main CountdownConfig
	Shot CountdownConfig

	// The shot clock drops to ShotAutoSetValue once the main timer reaches
	// ShotAutoSetThreshold.
	ShotAutoSetThreshold int
	ShotAutoSetValue     int

	ShotWarningAt    int
	FinalCountdownAt int
	FiveMinuteMark   int

	TickInterval time.Duration
}

// DefaultMatchConfig returns the match clock constants.
//
// The main timer starts at 320 seconds but resets to 600.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Main: CountdownConfig{
			Initial: 320,
			Reset:   600,
		},
		Shot: CountdownConfig{
			Initial: 15,
			Reset:   15,
		},
		ShotAutoSetThreshold: 300,
		ShotAutoSetValue:     10,
		ShotWarningAt:        5,
		FinalCountdownAt:     10,
		FiveMinuteMark:       300,
		TickInterval:         time.Second,
	}
}

// AudioConfig contains playback settings for the cue player.
type AudioConfig struct {
	Volume   float64
	Muted    bool
	SoundDir string
}
