package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	volume      *widget.Slider
	volumeLabel *widget.Label
	muted       *widget.Check
	fullscreen  *widget.Check
	soundDir    *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("SnookerClock Settings")

	volume := widget.NewSlider(0, 1)
	volume.Step = 0.05
	volume.Value = settings.Volume
	volumeLabel := widget.NewLabel(formatVolume(settings.Volume))
	volume.OnChanged = func(value float64) {
		volumeLabel.SetText(formatVolume(value))
	}

	muted := widget.NewCheck("Mute cues", nil)
	muted.SetChecked(settings.Muted)

	fullscreen := widget.NewCheck("Fullscreen scoreboard", nil)
	fullscreen.SetChecked(settings.Fullscreen)

	soundDir := widget.NewEntry()
	soundDir.SetPlaceHolder("built-in tones")
	soundDir.SetText(settings.SoundDir)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Audio", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Volume"), volumeLabel, volume),
		muted,
		widget.NewLabel("Sound folder (applied on restart)"),
		soundDir,
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fullscreen,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 320))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:      window,
		settings:    settings,
		onSave:      onSave,
		volume:      volume,
		volumeLabel: volumeLabel,
		muted:       muted,
		fullscreen:  fullscreen,
		soundDir:    soundDir,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.volume.SetValue(settings.Volume)
	prefs.volumeLabel.SetText(formatVolume(settings.Volume))
	prefs.muted.SetChecked(settings.Muted)
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.soundDir.SetText(settings.SoundDir)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.Volume = clampVolume(prefs.volume.Value)
	settings.Muted = prefs.muted.Checked
	settings.Fullscreen = prefs.fullscreen.Checked
	settings.SoundDir = prefs.soundDir.Text

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func formatVolume(value float64) string {
	return fmt.Sprintf("%3.0f%%", clampVolume(value)*100)
}

func clampVolume(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
