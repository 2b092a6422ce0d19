// File: doc.go
// Title: rlang Diagnostics Package Documentation
// Description: Package diagnostic renders rlang errors against the source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package diagnostic turns parser and evaluator errors into diagnostics that
// point at the source. Render produces plain text; styled terminal output
// is built on top of the same Diagnostic values.
package diagnostic
