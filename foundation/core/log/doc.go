// Package log provides structured logging for the alcc toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with contextual fields, request
//              ids and pluggable formatters (JSON, text, console). The
//              front-end components log through it at debug level, the CLI
//              configures it from the config file.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := alcclog.New().
//		WithLevel(alcclog.LevelDebug).
//		WithFormat(alcclog.FormatText).
//		WithField("component", "rlang-parser")
//
//	logger.Debug("statement parsed", alcclog.Fields{"tokens": 7})
//
//	timer := logger.StartTimer("rlang.Parse")
//	// ... parse
//	timer.Stop()
package log
