package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"pomodoro/internal/core/session"
)

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnRestart     func()
	OnSkip        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager mirrors the timer controls in the system tray.
type Manager struct {
	host        Host
	title       string
	menu        *fyne.Menu
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	restartItem *fyne.MenuItem
	skipItem    *fyne.MenuItem
	callbacks   Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(host Host, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		title:     title,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	show := fyne.NewMenuItem("Show timer", invoke(&manager.callbacks.OnShow))
	manager.toggleItem = fyne.NewMenuItem("Start Focus", invoke(&manager.callbacks.OnToggle))
	manager.restartItem = fyne.NewMenuItem(session.RestartLabel, invoke(&manager.callbacks.OnRestart))
	manager.skipItem = fyne.NewMenuItem("Skip to the next break", invoke(&manager.callbacks.OnSkip))
	preferences := fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences))
	quit := fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	quit.IsQuit = true

	manager.menu = fyne.NewMenu(title,
		manager.statusItem,
		show,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.restartItem,
		manager.skipItem,
		fyne.NewMenuItemSeparator(),
		preferences,
		quit,
	)
	manager.refreshMenu()

	return manager
}

// Render updates the menu labels from a controller view.
func (manager *Manager) Render(view session.View) {
	status := fmt.Sprintf("%s %s", view.PhaseLabel, view.FormattedTime)
	switch {
	case view.Degraded:
		status += " (timer unavailable)"
	case view.RunState == session.RunPaused:
		status += " (paused)"
	case view.RunState == session.RunStopped:
		status += " (stopped)"
	}
	manager.statusItem.Label = "Status: " + status
	manager.toggleItem.Label = view.PrimaryButtonLabel
	manager.skipItem.Label = view.SkipLabel
	manager.refreshMenu()
}

// Menu returns the tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}

func invoke(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
