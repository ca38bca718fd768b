package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/core/model"
)

const settingsFileName = "settings.yaml"

// Absent keys fall back to defaults; explicit values are kept as written so
// that invalid lengths surface as configuration errors.
type yamlSettings struct {
	FocusMinutes          *int  `yaml:"focus_minutes,omitempty"`
	ShortBreakMinutes     *int  `yaml:"short_break_minutes,omitempty"`
	LongBreakMinutes      *int  `yaml:"long_break_minutes,omitempty"`
	FocusSessionsPerCycle *int  `yaml:"focus_sessions_per_cycle,omitempty"`
	SoundEnabled          *bool `yaml:"sound_enabled,omitempty"`
}

// SettingsPath returns the default settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from the YAML file at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the YAML file at path.
func SaveSettings(path string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	focus := int(settings.FocusLength / time.Minute)
	shortBreak := int(settings.ShortBreakLength / time.Minute)
	longBreak := int(settings.LongBreakLength / time.Minute)
	sessions := settings.FocusSessionsPerCycle
	sound := settings.SoundEnabled

	serialized, err := yaml.Marshal(yamlSettings{
		FocusMinutes:          &focus,
		ShortBreakMinutes:     &shortBreak,
		LongBreakMinutes:      &longBreak,
		FocusSessionsPerCycle: &sessions,
		SoundEnabled:          &sound,
	})
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes != nil {
		settings.FocusLength = time.Duration(*fileData.FocusMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes != nil {
		settings.ShortBreakLength = time.Duration(*fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes != nil {
		settings.LongBreakLength = time.Duration(*fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.FocusSessionsPerCycle != nil {
		settings.FocusSessionsPerCycle = *fileData.FocusSessionsPerCycle
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
}
