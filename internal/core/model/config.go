package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates a TimerConfig that cannot drive a session cycle.
var ErrInvalidConfig = errors.New("invalid timer config")

// TimerConfig contains the immutable interval lengths of a Pomodoro cycle.
// Durations are counted in whole seconds.
type TimerConfig struct {
	Focus                 time.Duration
	ShortBreak            time.Duration
	LongBreak             time.Duration
	FocusSessionsPerCycle int
}

// DefaultTimerConfig returns the classic 25/5/20 cycle with four focus sessions.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Focus:                 25 * time.Minute,
		ShortBreak:            5 * time.Minute,
		LongBreak:             20 * time.Minute,
		FocusSessionsPerCycle: 4,
	}
}

// Validate reports every problem with the configuration.
func (config TimerConfig) Validate() error {
	var errs []error
	errs = append(errs, validateLength("focus", config.Focus))
	errs = append(errs, validateLength("short break", config.ShortBreak))
	errs = append(errs, validateLength("long break", config.LongBreak))
	if config.FocusSessionsPerCycle < 1 {
		errs = append(errs, fmt.Errorf("%w: focus sessions per cycle must be at least 1, got %d",
			ErrInvalidConfig, config.FocusSessionsPerCycle))
	}
	return errors.Join(errs...)
}

// Seconds converts an interval length to the countdown unit.
func Seconds(length time.Duration) int {
	return int(length / time.Second)
}

func validateLength(name string, length time.Duration) error {
	if length <= 0 {
		return fmt.Errorf("%w: %s length must be positive, got %s", ErrInvalidConfig, name, length)
	}
	if length < time.Second {
		return fmt.Errorf("%w: %s length must be at least 1s, got %s", ErrInvalidConfig, name, length)
	}
	return nil
}
