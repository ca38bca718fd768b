package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   model.Settings
	onSave     func(model.Settings) error
	focus      *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	sessions   *widget.Entry
	sound      *widget.Check
	errorLabel *widget.Label
	saveButton *widget.Button
}

// New creates a preferences window. onSave may reject the settings by
// returning an error, which is shown and keeps the window open.
func New(app fyne.App, title string, settings model.Settings, onSave func(model.Settings) error) *Window {
	window := app.NewWindow(title)

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		focus:      widget.NewEntry(),
		shortBreak: widget.NewEntry(),
		longBreak:  widget.NewEntry(),
		sessions:   widget.NewEntry(),
		sound:      widget.NewCheck("Play a sound when an interval ends", nil),
		errorLabel: widget.NewLabel(""),
	}
	prefs.errorLabel.Importance = widget.DangerImportance
	prefs.errorLabel.Wrapping = fyne.TextWrapWord
	prefs.errorLabel.Hide()
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus length"), prefs.focus, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break length"), prefs.shortBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break length"), prefs.longBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Focus sessions before a long break"), prefs.sessions),
		prefs.sound,
		prefs.errorLabel,
	)

	prefs.saveButton = widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(prefs.saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 320))

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.focus.SetText(formatMinutes(settings.FocusLength))
	prefs.shortBreak.SetText(formatMinutes(settings.ShortBreakLength))
	prefs.longBreak.SetText(formatMinutes(settings.LongBreakLength))
	prefs.sessions.SetText(strconv.Itoa(settings.FocusSessionsPerCycle))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.errorLabel.Hide()
}

func (prefs *Window) handleSave() {
	settings, err := prefs.readSettings()
	if err == nil {
		err = settings.TimerConfig().Validate()
	}
	if err == nil && prefs.onSave != nil {
		err = prefs.onSave(settings)
	}
	if err != nil {
		prefs.errorLabel.SetText(err.Error())
		prefs.errorLabel.Show()
		return
	}

	prefs.settings = settings
	prefs.errorLabel.Hide()
	prefs.window.Hide()
}

func (prefs *Window) readSettings() (model.Settings, error) {
	settings := prefs.settings

	var err error
	if settings.FocusLength, err = parseMinutes("focus length", prefs.focus.Text); err != nil {
		return settings, err
	}
	if settings.ShortBreakLength, err = parseMinutes("short break length", prefs.shortBreak.Text); err != nil {
		return settings, err
	}
	if settings.LongBreakLength, err = parseMinutes("long break length", prefs.longBreak.Text); err != nil {
		return settings, err
	}
	sessions, err := strconv.Atoi(strings.TrimSpace(prefs.sessions.Text))
	if err != nil {
		return settings, fmt.Errorf("focus sessions: %q is not a whole number", prefs.sessions.Text)
	}
	settings.FocusSessionsPerCycle = sessions
	settings.SoundEnabled = prefs.sound.Checked
	return settings, nil
}

func parseMinutes(name, value string) (time.Duration, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number of minutes", name, value)
	}
	return time.Duration(minutes) * time.Minute, nil
}

func formatMinutes(length time.Duration) string {
	return strconv.Itoa(int(length / time.Minute))
}
