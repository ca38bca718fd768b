package timerview

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
)

func newController(t *testing.T) *session.Controller {
	t.Helper()
	controller, err := session.New(model.DefaultTimerConfig(), session.Options{})
	require.NoError(t, err)
	t.Cleanup(controller.Close)
	return controller
}

func TestRenderInitialView(t *testing.T) {
	app := test.NewTempApp(t)
	controller := newController(t)
	window := New(app, "Pomodoro", Callbacks{})

	window.Render(controller.View())

	assert.Equal(t, "25:00", window.timeText.Text)
	assert.Equal(t, "Focus", window.phaseLabel.Text)
	assert.Equal(t, "Focus Sessions: 1/4", window.counterLabel.Text)
	assert.Equal(t, "Start Focus", window.primary.Text)
	assert.Equal(t, "Skip to the next break", window.skip.Text)
	assert.Equal(t, session.RestartLabel, window.restart.Text)
	assert.False(t, window.statusLabel.Visible())
}

func TestButtonsDriveController(t *testing.T) {
	app := test.NewTempApp(t)
	controller := newController(t)

	var window *Window
	render := func() { window.Render(controller.View()) }
	window = New(app, "Pomodoro", Callbacks{
		OnToggle:  func() { controller.Toggle(); render() },
		OnRestart: func() { controller.RestartSession(); render() },
		OnSkip:    func() { controller.SkipToNext(); render() },
	})
	render()

	test.Tap(window.primary)
	assert.Equal(t, "Pause Focus", window.primary.Text)

	test.Tap(window.primary)
	assert.Equal(t, "Resume Focus", window.primary.Text)

	test.Tap(window.skip)
	assert.Equal(t, "05:00", window.timeText.Text)
	assert.Equal(t, "Short Break", window.phaseLabel.Text)
	assert.Empty(t, window.counterLabel.Text)

	test.Tap(window.restart)
	assert.Equal(t, "25:00", window.timeText.Text)
	assert.Equal(t, "Start Focus", window.primary.Text)
}

func TestRenderDegradedNotice(t *testing.T) {
	app := test.NewTempApp(t)
	window := New(app, "Pomodoro", Callbacks{})

	window.Render(session.View{FormattedTime: "25:00", Degraded: true})

	assert.True(t, window.statusLabel.Visible())
	assert.Contains(t, window.statusLabel.Text, "will not advance")
}
