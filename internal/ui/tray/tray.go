package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "SnookerClock"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowBoard   func()
	OnPreferences func()
	OnToggleMain  func()
	OnToggleShot  func()
	OnResetShot   func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	mainItem    *fyne.MenuItem
	shotItem    *fyne.MenuItem
	statusLabel string
	mainRunning bool
	shotRunning bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "--:-- / --:--",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.mainItem = fyne.NewMenuItem("", invoke(&manager.callbacks.OnToggleMain))
	manager.shotItem = fyne.NewMenuItem("", invoke(&manager.callbacks.OnToggleShot))

	manager.refreshLabels()
	manager.refreshMenu()
	return manager
}

// SetStatus updates the clock readout shown at the top of the menu.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.refreshLabels()
	manager.refreshMenu()
}

// SetRunning updates the start/pause labels.
func (manager *Manager) SetRunning(mainRunning, shotRunning bool) {
	if mainRunning == manager.mainRunning && shotRunning == manager.shotRunning {
		return
	}
	manager.mainRunning = mainRunning
	manager.shotRunning = shotRunning
	manager.refreshLabels()
	manager.refreshMenu()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show scoreboard", invoke(&manager.callbacks.OnShowBoard)),
		fyne.NewMenuItemSeparator(),
		manager.mainItem,
		manager.shotItem,
		fyne.NewMenuItem("Reset shot clock", invoke(&manager.callbacks.OnResetShot)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
}

func (manager *Manager) refreshLabels() {
	manager.statusItem.Label = fmt.Sprintf("Frame / shot: %s", manager.statusLabel)
	manager.mainItem.Label = runLabel("frame clock", manager.mainRunning)
	manager.shotItem.Label = runLabel("shot clock", manager.shotRunning)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func runLabel(name string, running bool) string {
	if running {
		return "Pause " + name
	}
	return "Start " + name
}

// invoke defers the callback lookup until the item is tapped.
func invoke(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
