package board

import (
	"context"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"snookerclock/internal/core/match"
	"snookerclock/internal/ui/animation"
)

// Controller is the subset of match operations the board drives.
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

// Config defines board visuals.
type Config struct {
	Title         string
	Fullscreen    bool
	ShotWarningAt int
	Background    fyne.Resource
}

var (
	clockColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	warningColor = color.NRGBA{R: 232, G: 60, B: 48, A: 255}
	scoreColor   = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	// translucent wash over the background image
	washColor = color.NRGBA{R: 245, G: 245, B: 245, A: 40}
	panelFill = color.NRGBA{R: 0, G: 0, B: 0, A: 150}
)

// Window manages the scoreboard UI.
type Window struct {
	window     fyne.Window
	config     Config
	controller Controller

	mainLabel  *canvas.Text
	shotLabel  *canvas.Text
	mainToggle *widget.Button
	shotToggle *widget.Button

	nameEntries   [2]*widget.Entry
	selectButtons [2]*widget.Button
	scoreLabels   [2]*canvas.Text

	pulse *animation.Engine
}

// New creates the scoreboard window and renders the controller's current
// state.
func New(app fyne.App, config Config, controller Controller) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	board := &Window{
		window:     window,
		config:     config,
		controller: controller,
	}

	board.mainLabel = newClockText(96)
	board.shotLabel = newClockText(72)

	board.mainToggle = widget.NewButton("Start", controller.ToggleMain)
	mainReset := widget.NewButton("Reset", controller.ResetMain)
	board.shotToggle = widget.NewButton("Start", controller.ToggleShot)
	shotReset := widget.NewButton("Reset", controller.ResetShot)

	snapshot := controller.Snapshot()
	for i := range board.nameEntries {
		player := i + 1
		entry := widget.NewEntry()
		entry.SetText(snapshot.Score.Names[i])
		entry.OnChanged = func(name string) {
			if err := controller.RenamePlayer(player, name); err != nil {
				log.Warn().Err(err).Int("player", player).Msg("rename player")
			}
		}
		board.nameEntries[i] = entry

		board.selectButtons[i] = widget.NewButton("Select", func() {
			if err := controller.SelectPlayer(player); err != nil {
				log.Warn().Err(err).Int("player", player).Msg("select player")
			}
		})

		score := canvas.NewText("", scoreColor)
		score.TextStyle = fyne.TextStyle{Bold: true}
		score.TextSize = 32
		score.Alignment = fyne.TextAlignCenter
		board.scoreLabels[i] = score
	}

	balls := make([]fyne.CanvasObject, 0, len(Balls))
	for _, ball := range Balls {
		balls = append(balls, newBallButton(ball, func(points int) {
			if err := controller.AwardPoints(points); err != nil {
				log.Warn().Err(err).Int("points", points).Msg("award points")
			}
		}))
	}
	resetScores := widget.NewButton("Reset Scores", controller.ResetScores)

	board.pulse = animation.New(animation.DefaultConfig(), func(on bool) {
		fyne.Do(func() {
			board.setShotColor(on)
		})
	})

	heading := canvas.NewText("Snooker Scoreboard", clockColor)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.TextSize = 24
	heading.Alignment = fyne.TextAlignCenter

	versus := canvas.NewText("VS", clockColor)
	versus.TextStyle = fyne.TextStyle{Bold: true}

	nameSize := fyne.NewSize(180, board.nameEntries[0].MinSize().Height)
	content := container.NewVBox(
		container.NewCenter(board.mainLabel),
		container.NewCenter(container.NewHBox(board.mainToggle, mainReset)),
		layout.NewSpacer(),
		container.NewCenter(board.shotLabel),
		container.NewCenter(container.NewHBox(board.shotToggle, shotReset)),
		widget.NewSeparator(),
		heading,
		container.NewCenter(container.NewHBox(
			container.NewGridWrap(nameSize, board.nameEntries[0]),
			board.selectButtons[0],
			container.NewCenter(versus),
			board.selectButtons[1],
			container.NewGridWrap(nameSize, board.nameEntries[1]),
		)),
		container.NewGridWithColumns(2, board.scoreLabels[0], board.scoreLabels[1]),
		container.NewCenter(container.NewHBox(balls...)),
		container.NewCenter(resetScores),
	)

	panel := container.NewStack(canvas.NewRectangle(panelFill), container.NewPadded(content))
	layers := []fyne.CanvasObject{canvas.NewRectangle(washColor), container.NewCenter(panel)}
	if config.Background != nil {
		background := canvas.NewImageFromResource(config.Background)
		background.FillMode = canvas.ImageFillStretch
		layers = append([]fyne.CanvasObject{background}, layers...)
	}
	window.SetContent(container.NewStack(layers...))
	window.Resize(fyne.NewSize(960, 720))

	board.Render(snapshot)
	board.applyWindowMode()

	return board
}

// Show displays the board.
func (board *Window) Show() {
	board.window.Show()
	board.window.RequestFocus()
}

// Window returns the underlying Fyne window.
func (board *Window) Window() fyne.Window {
	return board.window
}

// UpdateConfig applies display settings.
func (board *Window) UpdateConfig(config Config) {
	board.config = config
	board.applyWindowMode()
}

// Render updates every label from the snapshot. It must run on the Fyne
// thread. Name entries are left alone so typing is never interrupted.
func (board *Window) Render(snapshot match.Snapshot) {
	board.mainLabel.Text = match.FormatClock(snapshot.Main.Remaining)
	board.mainLabel.Refresh()
	board.mainToggle.SetText(toggleLabel(snapshot.Main.Running))

	board.shotLabel.Text = match.FormatClock(snapshot.Shot.Remaining)
	board.shotLabel.Refresh()
	board.shotToggle.SetText(toggleLabel(snapshot.Shot.Running))
	board.renderShotWarning(snapshot.Shot)

	for i := range board.scoreLabels {
		board.scoreLabels[i].Text = scoreLine(snapshot.Score.Names[i], snapshot.Score.Points[i])
		board.scoreLabels[i].Refresh()

		importance := widget.MediumImportance
		if snapshot.Score.Active == i+1 {
			importance = widget.HighImportance
		}
		if board.selectButtons[i].Importance != importance {
			board.selectButtons[i].Importance = importance
			board.selectButtons[i].Refresh()
		}
	}
}

// Close stops the pulse and closes the window.
func (board *Window) Close() {
	board.pulse.Stop()
	board.window.Close()
}

func (board *Window) renderShotWarning(shot match.ShotState) {
	warning := shot.Running && shot.Remaining > 0 && shot.Remaining <= board.config.ShotWarningAt
	if warning {
		board.pulse.Start(context.Background())
		return
	}
	board.pulse.Stop()
	board.setShotColor(true)
}

func (board *Window) setShotColor(on bool) {
	board.shotLabel.Color = clockColor
	if !on {
		board.shotLabel.Color = warningColor
	}
	board.shotLabel.Refresh()
}

func (board *Window) applyWindowMode() {
	board.window.SetFullScreen(board.config.Fullscreen)
}

func newClockText(size float32) *canvas.Text {
	text := canvas.NewText("00:00", clockColor)
	text.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	text.TextSize = size
	text.Alignment = fyne.TextAlignCenter
	return text
}

func toggleLabel(running bool) string {
	if running {
		return "Pause"
	}
	return "Start"
}

func scoreLine(name string, points int) string {
	return name + ": " + strconv.Itoa(points)
}
