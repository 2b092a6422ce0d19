// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across a list of
//              directories, base names and extensions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	alccerr "github.com/msto63/alcc/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values applied under the file
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search locations of the alcc tool
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "alcc"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"alcc"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "ALCC",
		Required:   false,
	}
}

// Discover finds the first existing configuration file and loads it. When no
// file exists and the options do not require one, an empty configuration
// carrying the defaults and environment overrides is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"alcc"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		config, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if loadErr != nil {
			return nil, alccerr.Wrap(loadErr, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, alccerr.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(alccerr.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return Empty(options.EnvPrefix, options.Defaults), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", alccerr.New("configuration file not found").
		WithCode(alccerr.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}
