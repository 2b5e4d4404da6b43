package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/terrafusion/internal/config"
	"github.com/alexisbeaulieu97/terrafusion/internal/logger"
)

// loadConfig reads the configuration file named by the flags and applies
// the command line overrides on top of it.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.theme == "" && flags.mode == "" {
		return cfg, nil
	}
	if flags.theme != "" {
		cfg.Theme.Variant = flags.theme
	}
	if flags.mode != "" {
		cfg.Theme.Mode = flags.mode
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the command logger. Entries go to the configured log
// file when there is one and to fallback otherwise. The returned closer
// releases the file.
func newLogger(cfg *config.Config, verbose bool, fallback io.Writer) (*logger.Logger, func(), error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}

	writer := fallback
	closer := func() {}
	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closer = func() { _ = file.Close() }
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human,
		Writer:        writer,
		Component:     "terrafusion",
	})
	if err != nil {
		closer()
		return nil, nil, err
	}
	return log, closer, nil
}
