package timerview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/session"
)

// Callbacks defines the command hooks wired to the window controls.
type Callbacks struct {
	OnToggle  func()
	OnRestart func()
	OnSkip    func()
}

// Window renders the countdown and its controls.
type Window struct {
	window       fyne.Window
	timeText     *canvas.Text
	phaseLabel   *widget.Label
	counterLabel *widget.Label
	statusLabel  *widget.Label
	primary      *widget.Button
	restart      *widget.Button
	skip         *widget.Button
	callbacks    Callbacks
}

// New creates the timer window. Render must be called from the fyne main goroutine.
func New(app fyne.App, title string, callbacks Callbacks) *Window {
	window := app.NewWindow(title)

	timeText := canvas.NewText("--:--", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	timeText.Alignment = fyne.TextAlignCenter
	timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeText.TextSize = 56

	phaseLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	counterLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	statusLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	statusLabel.Hide()

	timerWindow := &Window{
		window:       window,
		timeText:     timeText,
		phaseLabel:   phaseLabel,
		counterLabel: counterLabel,
		statusLabel:  statusLabel,
		callbacks:    callbacks,
	}

	timerWindow.restart = widget.NewButtonWithIcon(session.RestartLabel, theme.ViewRefreshIcon(), func() {
		if timerWindow.callbacks.OnRestart != nil {
			timerWindow.callbacks.OnRestart()
		}
	})
	timerWindow.primary = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if timerWindow.callbacks.OnToggle != nil {
			timerWindow.callbacks.OnToggle()
		}
	})
	timerWindow.primary.Importance = widget.HighImportance
	timerWindow.skip = widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), func() {
		if timerWindow.callbacks.OnSkip != nil {
			timerWindow.callbacks.OnSkip()
		}
	})

	controls := container.NewHBox(timerWindow.restart, timerWindow.primary, timerWindow.skip)
	content := container.NewVBox(
		phaseLabel,
		timeText,
		container.NewCenter(controls),
		counterLabel,
		statusLabel,
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(420, 260))

	return timerWindow
}

// Render applies a controller view to the widgets.
func (timerWindow *Window) Render(view session.View) {
	timerWindow.timeText.Text = view.FormattedTime
	timerWindow.timeText.Refresh()

	timerWindow.phaseLabel.SetText(view.PhaseLabel)
	timerWindow.counterLabel.SetText(view.SessionCounterLabel)

	timerWindow.primary.SetText(view.PrimaryButtonLabel)
	if view.RunState == session.RunRunning {
		timerWindow.primary.SetIcon(theme.MediaPauseIcon())
	} else {
		timerWindow.primary.SetIcon(theme.MediaPlayIcon())
	}
	timerWindow.skip.SetText(view.SkipLabel)

	if view.Degraded {
		timerWindow.statusLabel.SetText("Background timer unavailable: the countdown will not advance.")
		timerWindow.statusLabel.Show()
	} else {
		timerWindow.statusLabel.Hide()
	}
}

// Show displays the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// Window exposes the underlying fyne window.
func (timerWindow *Window) Window() fyne.Window {
	return timerWindow.window
}
