//go:build linux

package platform

import (
	"log/slog"
	"os/exec"
)

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

func newSoundPlayer(logger *slog.Logger) SoundPlayer {
	path, err := exec.LookPath("paplay")
	if err != nil {
		return unsupportedSoundPlayer{logger: logger}
	}
	return &execSoundPlayer{
		binary: path,
		args: map[string][]string{
			"ui/success_chime": {freedesktopSounds + "complete.oga"},
			"ui/success_bling": {freedesktopSounds + "bell.oga"},
		},
		run:    startDetached,
		logger: logger,
	}
}
