// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors. The logger maps them to
//              log levels and the CLI uses them for exit codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial severity model

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks errors caused by user input, e.g. a malformed expression
	SeverityLow Severity = iota

	// SeverityMedium marks errors that abort an operation but leave the tool usable
	SeverityMedium

	// SeverityHigh marks configuration or environment problems
	SeverityHigh

	// SeverityCritical marks broken internal invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeEvaluation, CodeInvalidInput,
		CodeValidationFailed, CodeInvalidLength:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
