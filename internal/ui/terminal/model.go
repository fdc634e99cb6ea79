package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snookerclock/internal/core/match"
	"snookerclock/internal/ui/theme"
)

// Controller is the subset of match operations the terminal board drives.
type Controller interface {
	ToggleMain()
	ResetMain()
	ToggleShot()
	ResetShot()
	SelectPlayer(n int) error
	RenamePlayer(n int, name string) error
	AwardPoints(points int) error
	ResetScores()
	Snapshot() match.Snapshot
}

// ─── messages ────────────────────────────────────────────────────────────────

type eventMsg struct{ event match.Event }

type closedMsg struct{}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	ToggleMain  key.Binding
	ResetMain   key.Binding
	ToggleShot  key.Binding
	ResetShot   key.Binding
	Switch      key.Binding
	Award       key.Binding
	ResetScores key.Binding
	Rename      key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		ToggleMain:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "frame start/pause")),
		ResetMain:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "frame reset")),
		ToggleShot:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shot start/pause")),
		ResetShot:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "shot reset")),
		Switch:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch player")),
		Award:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "pot ball")),
		ResetScores: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear scores")),
		Rename:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename player")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMain, k.ToggleShot, k.Switch, k.Award, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleMain, k.ResetMain, k.ToggleShot, k.ResetShot},
		{k.Switch, k.Award, k.ResetScores, k.Rename, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Bubble Tea model for the terminal scoreboard.
type Model struct {
	controller    Controller
	events        <-chan match.Event
	snapshot      match.Snapshot
	shotWarningAt int
	keys          keyMap
	help          help.Model
	editing       bool
	err           error
}

// New creates a terminal model that renders events from the channel.
func New(controller Controller, events <-chan match.Event, shotWarningAt int) Model {
	return Model{
		controller:    controller,
		events:        events,
		snapshot:      controller.Snapshot(),
		shotWarningAt: shotWarningAt,
		keys:          defaultKeys(),
		help:          help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.snapshot = msg.event.Snapshot
		return m, waitForEvent(m.events)
	case closedMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleMain):
		m.controller.ToggleMain()
	case key.Matches(msg, m.keys.ResetMain):
		m.controller.ResetMain()
	case key.Matches(msg, m.keys.ToggleShot):
		m.controller.ToggleShot()
	case key.Matches(msg, m.keys.ResetShot):
		m.controller.ResetShot()
	case key.Matches(msg, m.keys.Switch):
		m.err = m.controller.SelectPlayer(3 - m.snapshot.Score.Active)
	case key.Matches(msg, m.keys.Award):
		points, err := strconv.Atoi(msg.String())
		if err == nil {
			err = m.controller.AwardPoints(points)
		}
		m.err = err
	case key.Matches(msg, m.keys.ResetScores):
		m.controller.ResetScores()
	case key.Matches(msg, m.keys.Rename):
		m.editing = true
		return m, nil
	default:
		return m, nil
	}
	m.snapshot = m.controller.Snapshot()
	return m, nil
}

// updateEditing renames the active player as the user types.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.snapshot.Score.Active
	name := m.snapshot.Score.Names[active-1]
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.editing = false
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyBackspace:
		runes := []rune(name)
		if len(runes) == 0 {
			return m, nil
		}
		name = string(runes[:len(runes)-1])
	case tea.KeySpace:
		name += " "
	case tea.KeyRunes:
		name += string(msg.Runes)
	default:
		return m, nil
	}
	m.err = m.controller.RenamePlayer(active, name)
	m.snapshot = m.controller.Snapshot()
	return m, nil
}

func (m Model) View() string {
	snapshot := m.snapshot

	clocks := lipgloss.JoinVertical(lipgloss.Center,
		theme.Muted.Render("FRAME"),
		theme.Clock.Render(match.FormatClock(snapshot.Main.Remaining))+" "+runState(snapshot.Main.Running),
		"",
		theme.Muted.Render("SHOT CLOCK"),
		m.shotStyle().Render(match.FormatClock(snapshot.Shot.Remaining))+" "+runState(snapshot.Shot.Running),
	)

	players := make([]string, len(snapshot.Score.Names))
	for i, name := range snapshot.Score.Names {
		style := theme.Inactive
		if snapshot.Score.Active == i+1 {
			style = theme.Active
		}
		label := name
		if m.editing && snapshot.Score.Active == i+1 {
			label += "_"
		}
		players[i] = style.Render(fmt.Sprintf("%s: %d", label, snapshot.Score.Points[i]))
	}

	board := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Snooker Scoreboard"),
		lipgloss.JoinHorizontal(lipgloss.Center, players[0], theme.Muted.Render("  VS  "), players[1]),
		ballLegend(),
	)

	footer := m.help.View(m.keys)
	if m.editing {
		footer = theme.Muted.Render("typing renames the active player · enter/esc to finish")
	}
	if m.err != nil {
		footer = theme.ClockHot.Render(m.err.Error()) + "\n" + footer
	}

	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Center,
		theme.Pane.Render(clocks),
		theme.Pane.Render(board),
		footer,
	))
}

func (m Model) shotStyle() lipgloss.Style {
	shot := m.snapshot.Shot
	if shot.Running && shot.Remaining > 0 && shot.Remaining <= m.shotWarningAt {
		return theme.ClockHot
	}
	return theme.Clock
}

func runState(running bool) string {
	if running {
		return theme.Muted.Render("▶")
	}
	return theme.Muted.Render("❚❚")
}

func ballLegend() string {
	balls := make([]string, 0, len(theme.BallColors))
	for points := 1; points <= len(theme.BallColors); points++ {
		balls = append(balls, lipgloss.NewStyle().
			Background(theme.BallColors[points]).
			Foreground(theme.Chalk).
			Bold(true).
			Padding(0, 1).
			Render(strconv.Itoa(points)))
	}
	return strings.Join(balls, " ")
}

func waitForEvent(events <-chan match.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg{event: event}
	}
}

// Run starts the terminal board and blocks until the user quits.
func Run(controller Controller, events <-chan match.Event, shotWarningAt int) error {
	program := tea.NewProgram(New(controller, events, shotWarningAt), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal board: %w", err)
	}
	return nil
}
