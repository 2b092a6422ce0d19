// File: token.go
// Title: rlang Token Definitions
// Description: Defines the closed set of token kinds produced by the rlang
//              lexer and the immutable Token record.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token definitions

package lexer

import (
	"fmt"
)

// Kind represents the kind of a lexical token
type Kind int

const (
	// None marks a character outside the recognized set
	None Kind = iota

	// NumberLiteral is a run of ASCII digits, value in Token.Value
	NumberLiteral

	// Operators
	Plus         // +
	Minus        // -
	Asterisk     // *
	ForwardSlash // /

	// Delimiters
	LeftParen          // (
	RightParen         // )
	LeftBracket        // {
	RightBracket       // }
	LeftSquareBracket  // [
	RightSquareBracket // ]
	LeftAngleBracket   // <
	RightAngleBracket  // >

	// Punctuation
	Comma       // ,
	DoubleQuote // "
	SingleQuote // '
	Colon       // :
	SemiColon   // ;
	Equal       // =

	// EOF terminates every token stream exactly once
	EOF
)

var kindNames = [...]string{
	None:               "None",
	NumberLiteral:      "NumberLiteral",
	Plus:               "Plus",
	Minus:              "Minus",
	Asterisk:           "Asterisk",
	ForwardSlash:       "ForwardSlash",
	LeftParen:          "LeftParen",
	RightParen:         "RightParen",
	LeftBracket:        "LeftBracket",
	RightBracket:       "RightBracket",
	LeftSquareBracket:  "LeftSquareBracket",
	RightSquareBracket: "RightSquareBracket",
	LeftAngleBracket:   "LeftAngleBracket",
	RightAngleBracket:  "RightAngleBracket",
	Comma:              "Comma",
	DoubleQuote:        "DoubleQuote",
	SingleQuote:        "SingleQuote",
	Colon:              "Colon",
	SemiColon:          "SemiColon",
	Equal:              "Equal",
	EOF:                "EOF",
}

// singleCharKinds is the fixed character table; anything else lexes as None.
var singleCharKinds = map[rune]Kind{
	'+':  Plus,
	'-':  Minus,
	'*':  Asterisk,
	'/':  ForwardSlash,
	'(':  LeftParen,
	')':  RightParen,
	'{':  LeftBracket,
	'}':  RightBracket,
	'[':  LeftSquareBracket,
	']':  RightSquareBracket,
	'<':  LeftAngleBracket,
	'>':  RightAngleBracket,
	',':  Comma,
	'"':  DoubleQuote,
	'\'': SingleQuote,
	':':  Colon,
	';':  SemiColon,
	'=':  Equal,
}

var kindSymbols = func() map[Kind]string {
	symbols := make(map[Kind]string, len(singleCharKinds))
	for r, k := range singleCharKinds {
		symbols[k] = string(r)
	}
	return symbols
}()

// String returns the name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Symbol returns the source character of a single-character kind, or ""
// for None, NumberLiteral and EOF.
func (k Kind) Symbol() string {
	return kindSymbols[k]
}

// IsOperator reports whether the kind is one of the four binary operators
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, Asterisk, ForwardSlash:
		return true
	default:
		return false
	}
}

// KindOf returns the kind a single character lexes to
func KindOf(r rune) Kind {
	if k, ok := singleCharKinds[r]; ok {
		return k
	}
	return None
}

// Token is an immutable lexical token
type Token struct {
	Kind Kind
	Span TextSpan

	// Value holds the literal value of a NumberLiteral. A literal beyond
	// the int64 range is saturated to math.MaxInt64 and flagged Overflow.
	Value    int64
	Overflow bool
}

// String returns a compact representation such as NumberLiteral(10) or Plus
func (t Token) String() string {
	switch t.Kind {
	case NumberLiteral:
		if t.Overflow {
			return fmt.Sprintf("NumberLiteral(%s overflow)", t.Span.Text)
		}
		return fmt.Sprintf("NumberLiteral(%d)", t.Value)
	case None:
		return fmt.Sprintf("None(%q)", t.Span.Text)
	default:
		return t.Kind.String()
	}
}

// Is reports whether the token has the given kind
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}
