// ============================================================================
// alcc - rlang toolchain
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolchain components
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the toolchain
const (
	// Toolchain version
	Platform = "0.1.0"

	// Component versions
	Language   = "0.1.0"
	REPL       = "0.1.0"
	Playground = "0.1.0"
)

// Set by the linker: -ldflags "-X github.com/msto63/alcc/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "rlang":
		return Language
	case "repl":
		return REPL
	case "playground":
		return Playground
	default:
		return Platform
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Language  string `json:"language"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Platform,
		Language:  Language,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
