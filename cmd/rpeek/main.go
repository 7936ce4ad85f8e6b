package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/rpeek/internal/app"
	"github.com/kk-code-lab/rpeek/internal/config"
	"github.com/kk-code-lab/rpeek/internal/logger"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rpeek",
		Short: "Terminal file browser with text, PDF, image and video preview",
		Long: `rpeek browses the current directory and previews the selected file.

Text and PDF files are shown as text, images are drawn with half-block
characters, and videos play through ffmpeg. Settings are read from
$XDG_CONFIG_HOME/rpeek/config.toml (override with RPEEK_CONFIG).`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run()
		},
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return err
	}

	var logOut io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	level := logger.ParseLevel(cfg.LogLevel)
	// The TUI owns the terminal, so only the log file is written until it exits.
	logger.Init(level, logOut, false)
	defer logger.Init(level, nil, true)

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	logger.Debug("rpeek exited", "path", app.CurrentPath())
	return nil
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	logger.Init(logger.LevelInfo, nil, true)

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("rpeek failed", "error", err)
		os.Exit(1)
	}
}
