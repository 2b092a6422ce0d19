// File: span.go
// Title: Source Text Spans
// Description: Half-open byte ranges into the source with the covered text
//              and the line and column of their start.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial span implementation

package lexer

import (
	"fmt"
)

// TextSpan is the half-open byte range [Start, End) of the source together
// with the exact text it covers. Line and Column are 1-based and locate
// Start; Column counts runes.
type TextSpan struct {
	Start  int
	End    int
	Text   string
	Line   int
	Column int
}

// Len returns the number of bytes covered
func (s TextSpan) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no text, as the EOF span does
func (s TextSpan) IsEmpty() bool {
	return s.End == s.Start
}

// Contains reports whether the byte offset lies inside the span
func (s TextSpan) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// String returns line:column followed by the byte range
func (s TextSpan) String() string {
	return fmt.Sprintf("%d:%d [%d,%d)", s.Line, s.Column, s.Start, s.End)
}
