package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/magicsim/internal/config"
	"github.com/vovakirdan/magicsim/internal/core"
	"github.com/vovakirdan/magicsim/internal/platform/tui"
)

// newLogger builds the session logger. Output always goes to the debug
// window's ring and, when configured, is appended to a file. Nothing is
// written to the terminal while the game owns it.
func newLogger(cfg config.Log) (logger *log.Logger, ring *tui.LogRing, closeFn func() error, err error) {
	ring = tui.NewLogRing(tui.DefaultLogLines)
	writers := []io.Writer{ring}
	closeFn = func() error { return nil }

	if cfg.Path != "" {
		path, err := config.ExpandHome(cfg.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, f)
		closeFn = f.Close
	}

	logger = log.NewWithOptions(io.MultiWriter(writers...), log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "magicsim",
	})
	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			closeFn()
			return nil, nil, nil, err
		}
		logger.SetLevel(level)
	}

	return logger, ring, closeFn, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

func sessionOptions(logger *log.Logger, ring *tui.LogRing) tui.Options {
	return tui.Options{
		Logger:      logger,
		Ring:        ring,
		RepeatGuard: time.Duration(appConfig.Input.RepeatGuardMS) * time.Millisecond,
	}
}
