package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/numconv-api/internal/config"
	"github.com/phrazzld/numconv-api/internal/platform/logger"
)

// setupAppLogger configures the process-wide JSON logger for the server.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}

// cliLogger returns a logger for one-shot commands. It writes to w so the
// command's result stays alone on stdout, and drops info records unless debug
// logging is configured.
func cliLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := logger.ParseLevel(cfg.Server.LogLevel)
	if level > slog.LevelDebug && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	return logger.New(w, level)
}
