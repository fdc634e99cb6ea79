package board

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snookerclock/internal/core/match"
)

type fakeController struct {
	calls    []string
	awarded  []int
	selected []int
	names    map[int]string
	snapshot match.Snapshot
}

func newFakeController() *fakeController {
	return &fakeController{
		names: make(map[int]string),
		snapshot: match.Snapshot{
			Main:  match.TimerState{Remaining: 320},
			Shot:  match.ShotState{TimerState: match.TimerState{Remaining: 15}},
			Score: match.ScoreState{Names: [2]string{"Player 1", "Player 2"}, Active: 1},
		},
	}
}

func (c *fakeController) ToggleMain()  { c.calls = append(c.calls, "toggle-main") }
func (c *fakeController) ResetMain()   { c.calls = append(c.calls, "reset-main") }
func (c *fakeController) ToggleShot()  { c.calls = append(c.calls, "toggle-shot") }
func (c *fakeController) ResetShot()   { c.calls = append(c.calls, "reset-shot") }
func (c *fakeController) ResetScores() { c.calls = append(c.calls, "reset-scores") }

func (c *fakeController) SelectPlayer(n int) error {
	c.selected = append(c.selected, n)
	return nil
}

func (c *fakeController) RenamePlayer(n int, name string) error {
	c.names[n] = name
	return nil
}

func (c *fakeController) AwardPoints(points int) error {
	c.awarded = append(c.awarded, points)
	return nil
}

func (c *fakeController) Snapshot() match.Snapshot { return c.snapshot }

func newTestBoard(t *testing.T) (*Window, *fakeController) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	controller := newFakeController()
	board := New(app, Config{Title: "test", ShotWarningAt: 5}, controller)
	t.Cleanup(board.pulse.Stop)
	return board, controller
}

func TestNewRendersInitialState(t *testing.T) {
	board, _ := newTestBoard(t)

	assert.Equal(t, "05:20", board.mainLabel.Text)
	assert.Equal(t, "00:15", board.shotLabel.Text)
	assert.Equal(t, "Start", board.mainToggle.Text)
	assert.Equal(t, "Player 1: 0", board.scoreLabels[0].Text)
	assert.Equal(t, "Player 2", board.nameEntries[1].Text)
	assert.Equal(t, widget.HighImportance, board.selectButtons[0].Importance)
	assert.Equal(t, widget.MediumImportance, board.selectButtons[1].Importance)
}

func TestButtonsDriveController(t *testing.T) {
	board, controller := newTestBoard(t)

	test.Tap(board.mainToggle)
	test.Tap(board.shotToggle)
	test.Tap(board.selectButtons[1])

	assert.Equal(t, []string{"toggle-main", "toggle-shot"}, controller.calls)
	assert.Equal(t, []int{2}, controller.selected)
}

func TestBallButtonsAwardTheirValue(t *testing.T) {
	var awarded []int
	for _, ball := range Balls {
		button := newBallButton(ball, func(points int) {
			awarded = append(awarded, points)
		})
		test.Tap(button)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, awarded)
}

func TestTypingRenamesPlayer(t *testing.T) {
	board, controller := newTestBoard(t)

	board.nameEntries[0].SetText("")
	test.Type(board.nameEntries[0], "Ronnie")

	assert.Equal(t, "Ronnie", controller.names[1])
}

func TestRenderUpdatesLabelsAndActivePlayer(t *testing.T) {
	board, _ := newTestBoard(t)

	board.Render(match.Snapshot{
		Main: match.TimerState{Remaining: 65, Running: true},
		Shot: match.ShotState{TimerState: match.TimerState{Remaining: 9, Running: true}, AutoSet: true},
		Score: match.ScoreState{
			Names:  [2]string{"Judd", "Mark"},
			Points: [2]int{12, 40},
			Active: 2,
		},
	})

	assert.Equal(t, "01:05", board.mainLabel.Text)
	assert.Equal(t, "Pause", board.mainToggle.Text)
	assert.Equal(t, "00:09", board.shotLabel.Text)
	assert.Equal(t, "Mark: 40", board.scoreLabels[1].Text)
	assert.Equal(t, widget.HighImportance, board.selectButtons[1].Importance)
	assert.False(t, board.pulse.Running())
}

func TestShotWarningPulsesOnlyWhileRunning(t *testing.T) {
	board, _ := newTestBoard(t)
	snapshot := newFakeController().snapshot

	snapshot.Shot = match.ShotState{TimerState: match.TimerState{Remaining: 5, Running: true}}
	board.Render(snapshot)
	require.True(t, board.pulse.Running())

	snapshot.Shot.Running = false
	board.Render(snapshot)
	assert.False(t, board.pulse.Running())
	assert.Eventually(t, func() bool {
		return board.shotLabel.Color == clockColor
	}, time.Second, 10*time.Millisecond)
}
