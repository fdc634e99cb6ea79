package match

import (
	"time"

	"snookerclock/internal/core/model"
)

// EventType defines the type of Match event.
type EventType string

const (
	EventTick        EventType = "tick"
	EventStateChange EventType = "state_change"
	EventScore       EventType = "score"
	EventCue         EventType = "cue"
)

// TimerState is a read-only view of a countdown.
type TimerState struct {
	Remaining int
	Running   bool
}

// ShotState extends TimerState with the auto-set flag.
type ShotState struct {
	TimerState
	AutoSet bool
}

// ScoreState is a read-only view of the scoreboard.
type ScoreState struct {
	Names  [2]string
	Points [2]int
	Active int
}

// Snapshot is a copy of the full Match state.
type Snapshot struct {
	Main  TimerState
	Shot  ShotState
	Score ScoreState
}

// Event represents a Match update for observers.
type Event struct {
	Type     EventType
	Cue      model.Cue
	Snapshot Snapshot
	At       time.Time
}
