package session

import "fmt"

// View is the read-only render state derived from the controller after every change.
type View struct {
	Phase                 Phase
	RunState              RunState
	Remaining             int
	FocusCount            int
	FocusSessionsPerCycle int

	FormattedTime       string
	PhaseLabel          string
	SessionCounterLabel string
	PrimaryButtonLabel  string
	SkipLabel           string
	Degraded            bool
}

// RestartLabel describes the restart control.
const RestartLabel = "Restart Session"

func newView(snap snapshot) View {
	phaseLabel := PhaseLabel(snap.phase)
	view := View{
		Phase:                 snap.phase,
		RunState:              snap.runState,
		Remaining:             snap.remaining,
		FocusCount:            snap.focusCount,
		FocusSessionsPerCycle: snap.sessionsPerCycle,
		FormattedTime:         FormatTime(snap.remaining),
		PhaseLabel:            phaseLabel,
		PrimaryButtonLabel:    fmt.Sprintf("%s %s", actionLabel(snap.runState), phaseLabel),
		SkipLabel:             skipLabel(snap.phase),
		Degraded:              snap.degraded,
	}
	if snap.phase == PhaseFocus {
		view.SessionCounterLabel = fmt.Sprintf("Focus Sessions: %d/%d", snap.focusCount, snap.sessionsPerCycle)
	}
	return view
}

// FormatTime renders seconds as zero-padded MM:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// PhaseLabel maps a phase tag to its display text.
func PhaseLabel(phase Phase) string {
	switch phase {
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

func actionLabel(state RunState) string {
	switch state {
	case RunRunning:
		return "Pause"
	case RunPaused:
		return "Resume"
	default:
		return "Start"
	}
}

func skipLabel(phase Phase) string {
	if phase == PhaseFocus {
		return "Skip to the next break"
	}
	return "Skip to the next session"
}
