package match

import "errors"

var (
	// ErrInvalidPlayer indicates a player number other than 1 or 2.
	ErrInvalidPlayer = errors.New("invalid player")
	// ErrInvalidPoints indicates a non-positive point award.
	ErrInvalidPoints = errors.New("points must be positive")
)

// Scoreboard tracks two named players and their points.
type Scoreboard struct {
	names  [2]string
	points [2]int
	active int
}

// NewScoreboard returns a scoreboard with default names and player 1 active.
func NewScoreboard() Scoreboard {
	return Scoreboard{
		names:  [2]string{"Player 1", "Player 2"},
		active: 1,
	}
}

// SelectPlayer makes player n the target of point awards.
func (board *Scoreboard) SelectPlayer(n int) error {
	if !validPlayer(n) {
		return ErrInvalidPlayer
	}
	board.active = n
	return nil
}

// RenamePlayer sets the display name of player n.
func (board *Scoreboard) RenamePlayer(n int, name string) error {
	if !validPlayer(n) {
		return ErrInvalidPlayer
	}
	board.names[n-1] = name
	return nil
}

// AwardPoints credits the active player.
func (board *Scoreboard) AwardPoints(points int) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	board.points[board.active-1] += points
	return nil
}

// ResetScores zeroes both scores. Names and the active player are kept.
func (board *Scoreboard) ResetScores() {
	board.points = [2]int{}
}

// State returns a copy of the scoreboard.
func (board Scoreboard) State() ScoreState {
	return ScoreState{
		Names:  board.names,
		Points: board.points,
		Active: board.active,
	}
}

func validPlayer(n int) bool {
	return n == 1 || n == 2
}
