// File: errors.go
// Title: rlang Parse Errors
// Description: Defines the parse error taxonomy with error codes, spans of
//              the offending token and sentinel values for errors.Is.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error taxonomy

package parser

import (
	"fmt"

	"github.com/msto63/alcc/foundation/rlang/lexer"
)

// ErrorCode classifies a parse failure
type ErrorCode string

const (
	// CodeLexicalAmbiguity: a None token where an operand or operator is needed
	CodeLexicalAmbiguity ErrorCode = "LEXICAL_AMBIGUITY"

	// CodeUnexpectedEndOfInput: input ended where an operand was required
	CodeUnexpectedEndOfInput ErrorCode = "UNEXPECTED_END_OF_INPUT"

	// CodeUnmatchedParenthesis: a ( without ) or a ) without (
	CodeUnmatchedParenthesis ErrorCode = "UNMATCHED_PARENTHESIS"

	// CodeMalformedOperand: a token that is neither a valid operand nor a
	// valid operator at its position
	CodeMalformedOperand ErrorCode = "MALFORMED_OPERAND"

	// CodeNumberOverflow: a literal outside the int64 range
	CodeNumberOverflow ErrorCode = "NUMBER_OVERFLOW"

	// CodeNestingTooDeep: parentheses nested beyond Options.MaxDepth
	CodeNestingTooDeep ErrorCode = "NESTING_TOO_DEEP"
)

// Sentinels for errors.Is; they match any *Error with the same code.
var (
	ErrLexicalAmbiguity     = &Error{Code: CodeLexicalAmbiguity}
	ErrUnexpectedEndOfInput = &Error{Code: CodeUnexpectedEndOfInput}
	ErrUnmatchedParenthesis = &Error{Code: CodeUnmatchedParenthesis}
	ErrMalformedOperand     = &Error{Code: CodeMalformedOperand}
	ErrNumberOverflow       = &Error{Code: CodeNumberOverflow}
	ErrNestingTooDeep       = &Error{Code: CodeNestingTooDeep}
)

// Error is a parse failure located at the token where parsing stalled
type Error struct {
	Code    ErrorCode
	Message string
	Token   lexer.Token
	Span    lexer.TextSpan

	// Related points at a second location, the opening parenthesis of an
	// unmatched group
	Related *lexer.TextSpan
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Span.Line, e.Span.Column, e.Message)
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code ErrorCode, tok lexer.Token, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Token:   tok,
		Span:    tok.Span,
	}
}

// describe names a token for messages: its text, or "end of input"
func describe(tok lexer.Token) string {
	if tok.Kind == lexer.EOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", tok.Span.Text)
}
