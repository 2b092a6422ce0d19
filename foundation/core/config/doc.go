// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads alcc settings from TOML or YAML files
//              with environment variable overrides and dotted key access.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for the alcc tool.

Key Features:
  • TOML and YAML files, format detected from the extension
  • Discovery of alcc.toml, alcc.yaml or alcc.yml in a list of directories
  • Environment overrides: log.level is read from ALCC_LOG_LEVEL
  • Nested defaults merged under the file values
  • Rule based validation with structured errors

Basic Usage:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "warn")
	maxDepth := cfg.GetInt("engine.max_depth", 0)

Validation:

	result := cfg.Validate(config.ValidationRules{
		"engine.max_depth": {Type: "int", Min: config.IntPtr(0)},
		"log.format":       {OneOf: []string{"text", "json", "console"}},
	})
	if err := result.Err(); err != nil {
		return err
	}

Environment variables take precedence over file values, file values take
precedence over defaults, and defaults passed to the getters apply last.
*/
package config
