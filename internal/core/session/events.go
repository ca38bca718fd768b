package session

import "time"

// Phase identifies the interval currently counting down.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// RunState governs whether ticks affect the countdown.
type RunState string

const (
	RunStopped RunState = "stopped"
	RunRunning RunState = "running"
	RunPaused  RunState = "paused"
)

// Notification sound identifiers passed to the SoundPlayer.
const (
	SoundFocusComplete = "ui/success_chime"
	SoundBreakComplete = "ui/success_bling"
)

// EventType defines the type of Controller event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventTick          EventType = "tick"
	EventPhaseComplete EventType = "phase_complete"
)

// Event carries the render state after a change.
type Event struct {
	Type EventType
	View View
	At   time.Time
}
