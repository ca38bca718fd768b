//go:build !linux && !darwin && !windows

package platform

import "log/slog"

func newSoundPlayer(logger *slog.Logger) SoundPlayer {
	return unsupportedSoundPlayer{logger: logger}
}
