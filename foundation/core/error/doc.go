// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the structured error type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package error provides the structured error type shared by all alcc packages.

An Error carries a message, an optional cause, a Code, a Severity and a set of
details. Builders return the receiver so errors read as one expression:

	err := alccerr.New("unmatched parenthesis").
		WithCode(alccerr.CodeSyntax).
		WithOperation("rlang.Parse").
		WithDetail("span_start", 0)

Wrap keeps the code and details of a wrapped *Error. Unwrap makes the type
work with errors.Is and errors.As.
*/
package error
