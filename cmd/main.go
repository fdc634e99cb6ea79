package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"snookerclock/internal/audio"
	"snookerclock/internal/core/match"
	"snookerclock/internal/core/model"
	"snookerclock/internal/platform"
	"snookerclock/internal/storage"
	"snookerclock/internal/ui/board"
	"snookerclock/internal/ui/preferences"
	"snookerclock/internal/ui/terminal"
	"snookerclock/internal/ui/tray"
	"snookerclock/resources"
)

const appName = "SnookerClock"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel   string
		soundDir   string
		fullscreen bool
	)

	// collect returns only the flags the user actually passed.
	collect := func(cmd *cobra.Command) overrides {
		var flags overrides
		if cmd.Flags().Changed("log-level") {
			flags.logLevel = &logLevel
		}
		if cmd.Flags().Changed("sound-dir") {
			flags.soundDir = &soundDir
		}
		if cmd.Flags().Changed("fullscreen") {
			flags.fullscreen = &fullscreen
		}
		return flags
	}

	root := &cobra.Command{
		Use:           "snookerclock",
		Short:         "Snooker frame clock, shot clock and scoreboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := loadSettings(collect(cmd))
			setupLogging(settings.LogLevel, os.Stderr)
			return runDesktop(settings)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&soundDir, "sound-dir", "", "directory with shot_warning, final_countdown and five_minutes mp3/wav files")
	root.PersistentFlags().BoolVar(&fullscreen, "fullscreen", false, "open the scoreboard fullscreen")

	root.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Run the scoreboard in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := loadSettings(collect(cmd))
			logFile, err := os.OpenFile(filepath.Join(os.TempDir(), "snookerclock.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer logFile.Close()
			setupLogging(settings.LogLevel, logFile)
			return runTerminal(settings)
		},
	})
	return root
}

func newPlayer(settings preferences.Settings) *audio.Player {
	player, err := audio.New(settings.AudioConfig())
	if err != nil {
		log.Warn().Err(err).Msg("audio disabled")
		return audio.NewSilent()
	}
	return player
}

func runTerminal(settings preferences.Settings) error {
	player := newPlayer(settings)
	defer player.Close()

	config := model.DefaultMatchConfig()
	game := match.New(config, match.Options{Player: player})
	defer game.Close()

	log.Info().Msg("starting terminal scoreboard")
	return terminal.Run(game, game.Subscribe(16), config.ShotWarningAt)
}

func runDesktop(settings preferences.Settings) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		log.Info().Msg("scoreboard already open, asked it to come to the front")
		return nil
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	player := newPlayer(settings)
	defer player.Close()

	config := model.DefaultMatchConfig()
	game := match.New(config, match.Options{Player: player})
	defer game.Close()

	fyneApp := app.NewWithID("com.snookerclock.app")
	fyneApp.SetIcon(resources.MustIcon("app.svg"))

	background := resources.MustBackground("baize.svg")
	boardConfig := func(settings preferences.Settings) board.Config {
		return board.Config{
			Title:         appName,
			Fullscreen:    settings.Fullscreen,
			ShotWarningAt: config.ShotWarningAt,
			Background:    background,
		}
	}
	boardWindow := board.New(fyneApp, boardConfig(settings), game)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Error().Err(err).Msg("save settings")
		}
		player.SetVolume(settings.Volume)
		player.SetMuted(settings.Muted)
		zerolog.SetGlobalLevel(parseLevel(settings.LogLevel))
		boardWindow.UpdateConfig(boardConfig(settings))
	})

	trayManager := setupTray(fyneApp, game, boardWindow, prefsWindow)

	go guard.Serve(func() {
		fyne.Do(boardWindow.Show)
	})

	events := game.Subscribe(16)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				boardWindow.Render(snapshot)
				trayManager.render(snapshot)
			})
		}
	}()

	log.Info().
		Bool("fullscreen", settings.Fullscreen).
		Str("sound_dir", settings.SoundDir).
		Msg("starting scoreboard")

	boardWindow.Show()
	fyneApp.Run()
	return nil
}

// trayState keeps the tray icon and menu in step with the clocks. It is a
// no-op where the platform has no system tray.
type trayState struct {
	app         desktop.App
	manager     *tray.Manager
	activeIcon  fyne.Resource
	pausedIcon  fyne.Resource
	mainRunning bool
}

func setupTray(fyneApp fyne.App, game *match.Match, boardWindow *board.Window, prefsWindow *preferences.Window) *trayState {
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Info().Msg("system tray unsupported on this platform")
		boardWindow.Window().SetMaster()
		return &trayState{}
	}

	// closing the board hides it; the tray keeps the clocks reachable
	boardWindow.Window().SetCloseIntercept(func() {
		boardWindow.Window().Hide()
	})

	state := &trayState{
		app:        desktopApp,
		activeIcon: resources.MustIcon("app.svg"),
		pausedIcon: resources.MustIcon("app_paused.svg"),
	}
	state.manager = tray.New(desktopApp, tray.Callbacks{
		OnShowBoard:   boardWindow.Show,
		OnPreferences: prefsWindow.Show,
		OnToggleMain:  game.ToggleMain,
		OnToggleShot:  game.ToggleShot,
		OnResetShot:   game.ResetShot,
		OnQuit: func() {
			game.Close()
			fyneApp.Quit()
		},
	})
	desktopApp.SetSystemTrayIcon(state.pausedIcon)
	state.render(game.Snapshot())
	return state
}

func (state *trayState) render(snapshot match.Snapshot) {
	if state.manager == nil {
		return
	}
	state.manager.SetStatus(match.FormatClock(snapshot.Main.Remaining) + " / " + match.FormatClock(snapshot.Shot.Remaining))
	state.manager.SetRunning(snapshot.Main.Running, snapshot.Shot.Running)

	if snapshot.Main.Running == state.mainRunning {
		return
	}
	state.mainRunning = snapshot.Main.Running
	if state.mainRunning {
		state.app.SetSystemTrayIcon(state.activeIcon)
	} else {
		state.app.SetSystemTrayIcon(state.pausedIcon)
	}
}
