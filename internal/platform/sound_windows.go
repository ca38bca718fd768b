//go:build windows

package platform

import (
	"log/slog"
	"os/exec"
)

func newSoundPlayer(logger *slog.Logger) SoundPlayer {
	path, err := exec.LookPath("powershell")
	if err != nil {
		return unsupportedSoundPlayer{logger: logger}
	}
	return &execSoundPlayer{
		binary: path,
		args: map[string][]string{
			"ui/success_chime": {"-NoProfile", "-Command", "[System.Media.SystemSounds]::Asterisk.Play()"},
			"ui/success_bling": {"-NoProfile", "-Command", "[System.Media.SystemSounds]::Exclamation.Play()"},
		},
		run:    startDetached,
		logger: logger,
	}
}
