// Package main is the entry point for the doorjam map explorer.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samdwyer/doorjam/internal/app"
	"github.com/samdwyer/doorjam/internal/config"
	"github.com/samdwyer/doorjam/internal/logger"
	"github.com/samdwyer/doorjam/internal/telemetry"
	"github.com/samdwyer/doorjam/internal/ui"
)

func main() {
	cfg, note, err := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logger.Log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(context.Background(), cfg, note); err != nil {
		logger.Log.Error(err)
		os.Exit(1)
	}
}

// run loads the world and drives the explorer until it exits. Log output
// and telemetry are released before it returns, whatever the outcome.
func run(ctx context.Context, cfg config.Config, note string) error {
	// The terminal UI owns the screen, so logs go to a file
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
		defer logger.SetOutput(os.Stderr)
	}
	if note != "" {
		logger.Log.Infof("Note: %s", note)
	}

	if cfg.Telemetry {
		for k, v := range cfg.OTelEnv() {
			os.Setenv(k, v)
		}
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.Warnf("Telemetry setup failed, running without observability: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.Errorf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	theme, err := ui.NewTheme(cfg.WallColor, cfg.FloorColor)
	if err != nil {
		return fmt.Errorf("invalid colors: %w", err)
	}

	q, err := app.LoadWorld(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load map")
		return fmt.Errorf("load map: %w", err)
	}

	a, err := app.New(q, theme)
	if err != nil {
		return fmt.Errorf("initialize explorer: %w", err)
	}

	if err := a.Run(ctx); err != nil {
		return fmt.Errorf("explorer: %w", err)
	}
	return nil
}
