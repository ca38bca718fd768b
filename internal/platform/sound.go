package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

// ErrSoundUnsupported indicates no sound backend is available on this system.
var ErrSoundUnsupported = errors.New("notification sound unsupported")

// SoundPlayer plays a notification cue by identifier without blocking.
type SoundPlayer interface {
	Play(soundID string)
}

// NewSoundPlayer returns a platform-specific sound player. Failures are
// logged and never returned to the caller.
func NewSoundPlayer(logger *slog.Logger) SoundPlayer {
	if logger == nil {
		logger = slog.Default()
	}
	return newSoundPlayer(logger.With("component", "sound"))
}

type commandRunner func(name string, args ...string) error

type execSoundPlayer struct {
	binary string
	args   map[string][]string
	run    commandRunner
	logger *slog.Logger
}

func (player *execSoundPlayer) Play(soundID string) {
	args, ok := player.args[soundID]
	if !ok {
		player.logger.Warn("unknown notification sound", "sound", soundID)
		return
	}
	if err := player.run(player.binary, args...); err != nil {
		player.logger.Warn("play notification sound", "sound", soundID, "error", err)
	}
}

type unsupportedSoundPlayer struct {
	logger *slog.Logger
}

func (player unsupportedSoundPlayer) Play(soundID string) {
	player.logger.Debug("skipping notification sound", "sound", soundID, "error", ErrSoundUnsupported)
}

// startDetached launches the command and reaps it in the background.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
