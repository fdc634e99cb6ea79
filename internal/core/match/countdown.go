package match

import "fmt"

// Countdown is a whole-second countdown that never goes below zero.
type Countdown struct {
	Remaining int
	Running   bool
}

// Decrement removes one second, floored at zero.
func (countdown *Countdown) Decrement() {
	countdown.Remaining = Decrement(countdown.Remaining)
}

// Decrement returns max(seconds-1, 0).
func Decrement(seconds int) int {
	if seconds <= 1 {
		return 0
	}
	return seconds - 1
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
