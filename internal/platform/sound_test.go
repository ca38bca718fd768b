package platform

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecSoundPlayerRunsMappedCommand(t *testing.T) {
	var gotName string
	var gotArgs []string
	player := &execSoundPlayer{
		binary: "/usr/bin/player",
		args:   map[string][]string{"ui/success_chime": {"chime.oga"}},
		run: func(name string, args ...string) error {
			gotName = name
			gotArgs = args
			return nil
		},
		logger: slog.Default(),
	}

	player.Play("ui/success_chime")

	assert.Equal(t, "/usr/bin/player", gotName)
	assert.Equal(t, []string{"chime.oga"}, gotArgs)
}

func TestExecSoundPlayerLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	calls := 0
	player := &execSoundPlayer{
		binary: "player",
		args:   map[string][]string{"ui/success_bling": {"bell.oga"}},
		run: func(string, ...string) error {
			calls++
			return errors.New("device busy")
		},
		logger: logger,
	}

	require.NotPanics(t, func() {
		player.Play("ui/success_bling")
		player.Play("ui/unknown")
	})

	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "device busy")
	assert.Contains(t, buf.String(), "unknown notification sound")
}

func TestNewSoundPlayerNeverNil(t *testing.T) {
	assert.NotNil(t, NewSoundPlayer(nil))
}

func TestStartDetachedMissingBinary(t *testing.T) {
	err := startDetached("/nonexistent/pomodoro-sound-binary")
	assert.Error(t, err)
}
