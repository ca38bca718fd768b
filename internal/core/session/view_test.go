package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := map[int]string{
		0:    "00:00",
		9:    "00:09",
		60:   "01:00",
		1500: "25:00",
		1439: "23:59",
		6000: "100:00",
		-5:   "00:00",
	}
	for seconds, want := range tests {
		assert.Equal(t, want, FormatTime(seconds), "seconds=%d", seconds)
	}
}

func TestPhaseLabel(t *testing.T) {
	assert.Equal(t, "Focus", PhaseLabel(PhaseFocus))
	assert.Equal(t, "Short Break", PhaseLabel(PhaseShortBreak))
	assert.Equal(t, "Long Break", PhaseLabel(PhaseLongBreak))
}

func TestViewLabelsPerRunState(t *testing.T) {
	snap := snapshot{
		phase:            PhaseLongBreak,
		remaining:        75,
		focusCount:       1,
		sessionsPerCycle: 4,
	}

	snap.runState = RunStopped
	assert.Equal(t, "Start Long Break", newView(snap).PrimaryButtonLabel)
	snap.runState = RunRunning
	assert.Equal(t, "Pause Long Break", newView(snap).PrimaryButtonLabel)
	snap.runState = RunPaused
	assert.Equal(t, "Resume Long Break", newView(snap).PrimaryButtonLabel)

	view := newView(snap)
	assert.Equal(t, "01:15", view.FormattedTime)
	assert.Empty(t, view.SessionCounterLabel)
	assert.Equal(t, "Skip to the next session", view.SkipLabel)
}

func TestViewFocusCounter(t *testing.T) {
	view := newView(snapshot{
		phase:            PhaseFocus,
		runState:         RunStopped,
		remaining:        1500,
		focusCount:       3,
		sessionsPerCycle: 4,
	})

	assert.Equal(t, "Focus Sessions: 3/4", view.SessionCounterLabel)
	assert.Equal(t, "Skip to the next break", view.SkipLabel)
}
