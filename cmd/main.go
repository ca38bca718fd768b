package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

const appName = "Pomodoro"

type flags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := flags{}
	cmd := &cobra.Command{
		Use:           "pomodoro",
		Short:         "Pomodoro focus timer",
		Long:          "A desktop Pomodoro timer cycling focus sessions with short and long breaks.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Settings file (default <user config dir>/Pomodoro/settings.yaml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", string(logging.FormatText), "Log format: text or json")
	return cmd
}

func run(opts flags) error {
	logger, err := logging.New(logging.Config{
		Level:  opts.logLevel,
		Format: logging.Format(opts.logFormat),
		Output: os.Stderr,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	lock, err := platform.LockInstance(appName)
	if err != nil {
		logger.Warn("single instance", "error", err)
		return nil
	}
	defer func() {
		_ = lock.Release()
	}()

	settingsPath := opts.configPath
	if settingsPath == "" {
		if settingsPath, err = storage.SettingsPath(appName); err != nil {
			return err
		}
	}
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		return err
	}
	if err := settings.TimerConfig().Validate(); err != nil {
		return fmt.Errorf("settings %s: %w", settingsPath, err)
	}

	shell := newShell(logger, settingsPath, settings, platform.NewSoundPlayer(logger))
	return shell.Run()
}
