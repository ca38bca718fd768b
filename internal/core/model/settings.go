package model

import "time"

// Settings defines editable user preferences.
type Settings struct {
	FocusLength           time.Duration
	ShortBreakLength      time.Duration
	LongBreakLength       time.Duration
	FocusSessionsPerCycle int
	SoundEnabled          bool
}

// DefaultSettings returns default settings for the timer.
func DefaultSettings() Settings {
	config := DefaultTimerConfig()
	return Settings{
		FocusLength:           config.Focus,
		ShortBreakLength:      config.ShortBreak,
		LongBreakLength:       config.LongBreak,
		FocusSessionsPerCycle: config.FocusSessionsPerCycle,
		SoundEnabled:          true,
	}
}

// TimerConfig converts settings to the session controller configuration.
func (settings Settings) TimerConfig() TimerConfig {
	return TimerConfig{
		Focus:                 settings.FocusLength,
		ShortBreak:            settings.ShortBreakLength,
		LongBreak:             settings.LongBreakLength,
		FocusSessionsPerCycle: settings.FocusSessionsPerCycle,
	}
}
