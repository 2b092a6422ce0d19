// File: codes.go
// Title: Error Codes
// Description: Defines the structured error codes used across the alcc
//              toolchain. Codes group errors into categories so callers
//              can react without string matching.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Codes for the rlang front-end and its tooling

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// rlang front-end
	CodeLexical    Code = "RLANG_LEXICAL"
	CodeSyntax     Code = "RLANG_SYNTAX"
	CodeEvaluation Code = "RLANG_EVALUATION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// Transport (playground)
	CodeProtocol Code = "PROTOCOL_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax, CodeEvaluation,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidLength,
		CodeProtocol:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeEvaluation:
		return "rlang"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidLength, CodeInvalidInput:
		return "validation"
	case CodeProtocol:
		return "transport"
	default:
		return "generic"
	}
}
