// ============================================================================
// alcc - rlang toolchain
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/msto63/alcc/foundation/core/config"
	alcclog "github.com/msto63/alcc/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "console" (default: console)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// FromConfig reads log.level and log.format from cfg on top of the defaults
func FromConfig(name string, cfg *config.Config) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg == nil {
		return lc
	}
	lc.Level = cfg.GetString("log.level", lc.Level)
	lc.Format = cfg.GetString("log.format", lc.Format)
	return lc
}

// NewLogger creates a foundation logger. Unknown levels fall back to the
// foundation default level and unknown formats to console output.
func NewLogger(cfg LoggerConfig) *alcclog.Logger {
	level, err := alcclog.ParseLevel(cfg.Level)
	if err != nil {
		level = alcclog.DefaultLevel()
	}

	format, err := alcclog.ParseFormat(cfg.Format)
	if err != nil {
		format = alcclog.FormatConsole
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return alcclog.NewWithConfig(alcclog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *alcclog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}
