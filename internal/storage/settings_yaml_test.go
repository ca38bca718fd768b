package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope", settingsFileName))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSaveThenLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Pomodoro", settingsFileName)
	want := model.Settings{
		FocusLength:           50 * time.Minute,
		ShortBreakLength:      10 * time.Minute,
		LongBreakLength:       30 * time.Minute,
		FocusSessionsPerCycle: 3,
		SoundEnabled:          false,
	}

	require.NoError(t, SaveSettings(path, want))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("focus_minutes: 45\n"), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	defaults := model.DefaultSettings()
	assert.Equal(t, 45*time.Minute, settings.FocusLength)
	assert.Equal(t, defaults.ShortBreakLength, settings.ShortBreakLength)
	assert.Equal(t, defaults.FocusSessionsPerCycle, settings.FocusSessionsPerCycle)
	assert.True(t, settings.SoundEnabled)
}

func TestLoadSettingsKeepsInvalidValuesForValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("focus_minutes: 0\nfocus_sessions_per_cycle: -1\n"), 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	err = settings.TimerConfig().Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidConfig))
}

func TestLoadSettingsRejectsMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("focus_minutes: [oops"), 0o644))

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
}
