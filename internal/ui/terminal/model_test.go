package terminal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snookerclock/internal/core/match"
	"snookerclock/internal/ui/theme"
)

type fakeController struct {
	calls    []string
	snapshot match.Snapshot
}

func newFakeController() *fakeController {
	return &fakeController{
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
	if n != 1 && n != 2 {
		return match.ErrInvalidPlayer
	}
	c.snapshot.Score.Active = n
	return nil
}

func (c *fakeController) RenamePlayer(n int, name string) error {
	c.snapshot.Score.Names[n-1] = name
	return nil
}

func (c *fakeController) AwardPoints(points int) error {
	if points <= 0 {
		return match.ErrInvalidPoints
	}
	c.snapshot.Score.Points[c.snapshot.Score.Active-1] += points
	return nil
}

func (c *fakeController) Snapshot() match.Snapshot { return c.snapshot }

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysDriveClocks(t *testing.T) {
	controller := newFakeController()
	m := New(controller, nil, 5)

	press(t, m,
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")},
		runes("r"),
		runes("s"),
		runes("x"),
		runes("c"),
	)

	assert.Equal(t, []string{"toggle-main", "reset-main", "toggle-shot", "reset-shot", "reset-scores"}, controller.calls)
}

func TestBallKeysAwardActivePlayer(t *testing.T) {
	controller := newFakeController()
	m := New(controller, nil, 5)

	m = press(t, m, runes("7"), tea.KeyMsg{Type: tea.KeyTab}, runes("1"), runes("4"))

	assert.Equal(t, [2]int{7, 5}, m.snapshot.Score.Points)
	assert.Equal(t, 2, m.snapshot.Score.Active)
	assert.Contains(t, m.View(), "Player 2: 5")
}

func TestRenameEditsActivePlayerLive(t *testing.T) {
	controller := newFakeController()
	controller.snapshot.Score.Names[0] = ""
	m := New(controller, nil, 5)

	m = press(t, m, runes("e"), runes("Ronnie"), tea.KeyMsg{Type: tea.KeySpace}, runes("Oo"))
	require.True(t, m.editing)
	assert.Equal(t, "Ronnie Oo", controller.snapshot.Score.Names[0])

	// keys that normally control the clocks are typed while editing
	m = press(t, m, runes("s"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.editing)
	assert.Empty(t, controller.calls)
	assert.Equal(t, "Ronnie Oo", controller.snapshot.Score.Names[0])
}

func TestQuitKey(t *testing.T) {
	m := New(newFakeController(), nil, 5)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEventsUpdateSnapshotUntilClosed(t *testing.T) {
	events := make(chan match.Event, 1)
	m := New(newFakeController(), events, 5)

	events <- match.Event{
		Type: match.EventTick,
		Snapshot: match.Snapshot{
			Main:  match.TimerState{Remaining: 61, Running: true},
			Shot:  match.ShotState{TimerState: match.TimerState{Remaining: 4, Running: true}},
			Score: match.ScoreState{Names: [2]string{"A", "B"}, Active: 1},
		},
	}
	msg := m.Init()()
	updated, cmd := m.Update(msg)
	m = updated.(Model)

	assert.Equal(t, 61, m.snapshot.Main.Remaining)
	assert.Contains(t, m.View(), "01:01")
	assert.Contains(t, m.View(), "00:04")
	require.NotNil(t, cmd)

	close(events)
	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestShotStyleWarnsOnlyWhileRunning(t *testing.T) {
	m := New(newFakeController(), nil, 5)

	m.snapshot.Shot = match.ShotState{TimerState: match.TimerState{Remaining: 5, Running: true}}
	assert.Equal(t, theme.ClockHot.GetForeground(), m.shotStyle().GetForeground())

	m.snapshot.Shot.Running = false
	assert.Equal(t, theme.Clock.GetForeground(), m.shotStyle().GetForeground())

	m.snapshot.Shot = match.ShotState{TimerState: match.TimerState{Remaining: 0, Running: true}}
	assert.Equal(t, theme.Clock.GetForeground(), m.shotStyle().GetForeground())
}
