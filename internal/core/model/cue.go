package model

// Cue identifies a one-shot audio cue.
type Cue int

const (
	CueShotWarning Cue = iota
	CueFinalCountdown
	CueFiveMinutes
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueShotWarning, CueFinalCountdown, CueFiveMinutes}

// String returns the cue name, also used as its sound file base name.
func (cue Cue) String() string {
	switch cue {
	case CueShotWarning:
		return "shot_warning"
	case CueFinalCountdown:
		return "final_countdown"
	case CueFiveMinutes:
		return "five_minutes"
	default:
		return "unknown"
	}
}
