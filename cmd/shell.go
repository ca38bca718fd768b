package main

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerview"
	"pomodoro/internal/ui/tray"
)

// shell wires the session controller to the fyne window and tray. All fields
// are touched only on the fyne main goroutine.
type shell struct {
	logger       *slog.Logger
	settingsPath string
	settings     model.Settings
	sound        platform.SoundPlayer

	app        fyne.App
	window     *timerview.Window
	tray       *tray.Manager
	prefs      *preferences.Window
	controller *session.Controller
}

func newShell(logger *slog.Logger, settingsPath string, settings model.Settings, sound platform.SoundPlayer) *shell {
	return &shell{
		logger:       logger,
		settingsPath: settingsPath,
		settings:     settings,
		sound:        sound,
	}
}

func (s *shell) Run() error {
	s.app = app.NewWithID("com.pomodoro.app")

	s.window = timerview.New(s.app, appName, timerview.Callbacks{
		OnToggle:  s.toggle,
		OnRestart: s.restart,
		OnSkip:    s.skip,
	})
	s.prefs = preferences.New(s.app, appName+" Settings", s.settings, s.applySettings)
	s.window.Window().SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Timer", fyne.NewMenuItem("Preferences", s.prefs.Show)),
	))

	if desktopApp, ok := s.app.(desktop.App); ok {
		s.tray = tray.New(desktopApp, appName, tray.Callbacks{
			OnShow:        s.window.Show,
			OnToggle:      s.toggle,
			OnRestart:     s.restart,
			OnSkip:        s.skip,
			OnPreferences: s.prefs.Show,
			OnQuit:        s.app.Quit,
		})
		// The countdown keeps running in the tray while the window is hidden.
		s.window.Window().SetCloseIntercept(func() {
			s.window.Window().Hide()
		})
	} else {
		s.logger.Info("system tray unsupported on this platform")
		s.window.Window().SetMaster()
	}

	if err := s.startController(s.settings); err != nil {
		return err
	}
	defer func() {
		s.controller.Close()
	}()

	s.window.Show()
	s.app.Run()
	return nil
}

func (s *shell) toggle() {
	s.controller.Toggle()
}

func (s *shell) restart() {
	s.controller.RestartSession()
}

func (s *shell) skip() {
	s.controller.SkipToNext()
}

// applySettings persists new settings and rebuilds the controller, since a
// controller's configuration is fixed at construction.
func (s *shell) applySettings(settings model.Settings) error {
	if err := storage.SaveSettings(s.settingsPath, settings); err != nil {
		return err
	}
	if err := s.startController(settings); err != nil {
		return err
	}
	s.settings = settings
	s.logger.Info("settings applied", "path", s.settingsPath)
	return nil
}

func (s *shell) startController(settings model.Settings) error {
	options := session.Options{Logger: s.logger}
	if settings.SoundEnabled && s.sound != nil {
		options.Sound = s.sound
	}
	controller, err := session.New(settings.TimerConfig(), options)
	if err != nil {
		return err
	}

	if s.controller != nil {
		s.controller.Close()
	}
	s.controller = controller

	events := controller.Subscribe(8)
	go func() {
		for event := range events {
			view := event.View
			fyne.Do(func() {
				if s.controller == controller {
					s.render(view)
				}
			})
		}
	}()

	s.render(controller.View())
	return nil
}

func (s *shell) render(view session.View) {
	s.window.Render(view)
	if s.tray != nil {
		s.tray.Render(view)
	}
}
