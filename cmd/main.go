package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"bankdemo/config"
	"bankdemo/internal/scenario"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Starting application")

	runner := scenario.NewRunner(scenario.CoreOpener, os.Stdout, logger)
	result := runner.Run(ctx, scenario.DefaultScript())

	logger.InfoContext(ctx, "Application complete", "opened", result.Opened, "error", result.Err)
}

// newLogger writes to w so the transcript on stdout stays readable.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}

	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
