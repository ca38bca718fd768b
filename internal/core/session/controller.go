package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/ticker"
)

// ErrTickSourceUnavailable indicates the background heartbeat could not be created.
var ErrTickSourceUnavailable = errors.New("tick source unavailable")

// TickSource delivers heartbeat ticks between Start and Stop.
type TickSource interface {
	Start(interval time.Duration)
	Stop()
	Ticks() <-chan struct{}
	Dispose()
}

// TickSourceFactory creates the heartbeat owned by one Controller.
type TickSourceFactory func() (TickSource, error)

// SoundPlayer plays a notification cue. Implementations must not block.
type SoundPlayer interface {
	Play(soundID string)
}

// Options contains runtime collaborators for a Controller.
type Options struct {
	TickInterval  time.Duration
	NewTickSource TickSourceFactory
	Sound         SoundPlayer
	Logger        *slog.Logger
}

type snapshot struct {
	phase            Phase
	runState         RunState
	remaining        int
	focusCount       int
	sessionsPerCycle int
	degraded         bool
}

// Controller is the Pomodoro state machine. It owns the countdown and
// translates ticks and user commands into phase transitions.
type Controller struct {
	mu          sync.Mutex
	config      model.TimerConfig
	options     Options
	logger      *slog.Logger
	source      TickSource
	degradedErr error
	phase       Phase
	runState    RunState
	remaining   int
	focusCount  int
	events      []chan Event
	closed      bool
}

// New creates a Controller in the stopped focus state.
// An invalid config is rejected. A tick source that cannot be created leaves
// the controller usable but degraded: it never counts down.
func New(config model.TimerConfig, options Options) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if options.TickInterval <= 0 {
		options.TickInterval = ticker.DefaultInterval
	}
	if options.NewTickSource == nil {
		options.NewTickSource = func() (TickSource, error) {
			return ticker.New(), nil
		}
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	controller := &Controller{
		config:  config,
		options: options,
		logger:  options.Logger.With("component", "session"),
	}
	controller.restartLocked()

	source, err := options.NewTickSource()
	if err != nil || source == nil {
		if err == nil {
			err = errors.New("factory returned no source")
		}
		controller.degradedErr = fmt.Errorf("%w: %w", ErrTickSourceUnavailable, err)
		controller.logger.Error("timer will not count down", "error", controller.degradedErr)
		return controller, nil
	}
	controller.source = source
	go controller.consume(source.Ticks())

	return controller, nil
}

// Degraded returns the initialization error when the tick source is missing.
func (controller *Controller) Degraded() error {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.degradedErr
}

// Config returns the configuration the controller was built with.
func (controller *Controller) Config() model.TimerConfig {
	return controller.config
}

// View returns the current render state.
func (controller *Controller) View() View {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return newView(controller.snapshotLocked())
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than stall the countdown.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		close(ch)
		return ch
	}
	controller.events = append(controller.events, ch)
	return ch
}

// OnTick applies one heartbeat. Ticks arriving outside the running state are dropped.
func (controller *Controller) OnTick() {
	controller.mu.Lock()
	if controller.closed || controller.runState != RunRunning {
		controller.mu.Unlock()
		return
	}

	if controller.remaining > 0 {
		controller.remaining--
	}
	if controller.remaining > 0 {
		controller.emitLocked(EventTick)
		controller.mu.Unlock()
		return
	}

	sound := completionSound(controller.phase)
	controller.stopSourceLocked()
	controller.runState = RunStopped
	controller.advanceLocked()
	controller.emitLocked(EventPhaseComplete)
	controller.mu.Unlock()

	controller.play(sound)
}

// Start runs the countdown from the stopped or paused state.
func (controller *Controller) Start() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.startLocked()
}

// Pause suspends a running countdown and silences the tick source.
func (controller *Controller) Pause() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.pauseLocked()
}

// Toggle is the primary control: start, pause or resume depending on run state.
func (controller *Controller) Toggle() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	switch controller.runState {
	case RunStopped, RunPaused:
		controller.startLocked()
	case RunRunning:
		controller.pauseLocked()
	default:
		controller.stopSourceLocked()
		controller.runState = RunStopped
		controller.emitLocked(EventStateChange)
	}
}

// RestartSession returns to the first focus session of a fresh cycle.
func (controller *Controller) RestartSession() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.stopSourceLocked()
	controller.restartLocked()
	controller.emitLocked(EventStateChange)
}

// SkipToNext moves to the following phase as if the current one completed,
// without playing a sound.
func (controller *Controller) SkipToNext() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.stopSourceLocked()
	controller.runState = RunStopped
	controller.advanceLocked()
	controller.emitLocked(EventStateChange)
}

// Close stops and releases the tick source and closes observers.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.runState = RunStopped
	if controller.source != nil {
		controller.source.Stop()
		controller.source.Dispose()
	}
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (controller *Controller) consume(ticks <-chan struct{}) {
	for range ticks {
		controller.OnTick()
	}
}

func (controller *Controller) startLocked() {
	if controller.closed || controller.runState == RunRunning {
		return
	}
	controller.runState = RunRunning
	if controller.source != nil {
		controller.source.Start(controller.options.TickInterval)
	}
	controller.emitLocked(EventStateChange)
}

func (controller *Controller) pauseLocked() {
	if controller.closed || controller.runState != RunRunning {
		return
	}
	controller.runState = RunPaused
	controller.stopSourceLocked()
	controller.emitLocked(EventStateChange)
}

func (controller *Controller) stopSourceLocked() {
	if controller.source != nil {
		controller.source.Stop()
	}
}

func (controller *Controller) restartLocked() {
	controller.phase = PhaseFocus
	controller.runState = RunStopped
	controller.remaining = model.Seconds(controller.config.Focus)
	controller.focusCount = 1
}

// advanceLocked applies the phase transition table shared by completion and skip.
func (controller *Controller) advanceLocked() {
	from := controller.phase
	switch controller.phase {
	case PhaseFocus:
		if controller.focusCount < controller.config.FocusSessionsPerCycle {
			controller.focusCount++
			controller.phase = PhaseShortBreak
			controller.remaining = model.Seconds(controller.config.ShortBreak)
		} else {
			controller.focusCount = 1
			controller.phase = PhaseLongBreak
			controller.remaining = model.Seconds(controller.config.LongBreak)
		}
	case PhaseShortBreak:
		controller.phase = PhaseFocus
		controller.remaining = model.Seconds(controller.config.Focus)
	case PhaseLongBreak:
		controller.focusCount = 1
		controller.phase = PhaseFocus
		controller.remaining = model.Seconds(controller.config.Focus)
	}
	controller.logger.Debug("phase advanced",
		"from", from,
		"to", controller.phase,
		"focus_count", controller.focusCount)
}

func completionSound(phase Phase) string {
	if phase == PhaseFocus {
		return SoundFocusComplete
	}
	return SoundBreakComplete
}

func (controller *Controller) play(soundID string) {
	if controller.options.Sound == nil {
		return
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			controller.logger.Warn("notification sound failed", "sound", soundID, "panic", recovered)
		}
	}()
	controller.options.Sound.Play(soundID)
}

func (controller *Controller) snapshotLocked() snapshot {
	return snapshot{
		phase:            controller.phase,
		runState:         controller.runState,
		remaining:        controller.remaining,
		focusCount:       controller.focusCount,
		sessionsPerCycle: controller.config.FocusSessionsPerCycle,
		degraded:         controller.degradedErr != nil,
	}
}

func (controller *Controller) emitLocked(eventType EventType) {
	event := Event{
		Type: eventType,
		View: newView(controller.snapshotLocked()),
		At:   time.Now(),
	}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
