//go:build darwin

package platform

import (
	"log/slog"
	"os/exec"
)

func newSoundPlayer(logger *slog.Logger) SoundPlayer {
	path, err := exec.LookPath("afplay")
	if err != nil {
		return unsupportedSoundPlayer{logger: logger}
	}
	return &execSoundPlayer{
		binary: path,
		args: map[string][]string{
			"ui/success_chime": {"/System/Library/Sounds/Glass.aiff"},
			"ui/success_bling": {"/System/Library/Sounds/Ping.aiff"},
		},
		run:    startDetached,
		logger: logger,
	}
}
