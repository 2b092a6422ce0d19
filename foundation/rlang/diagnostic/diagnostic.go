// File: diagnostic.go
// Title: rlang Diagnostics
// Description: Converts parse and evaluation errors into diagnostics with
//              labelled source spans and renders them as plain text with
//              caret underlines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package diagnostic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	alccerr "github.com/msto63/alcc/foundation/core/error"
	"github.com/msto63/alcc/foundation/rlang/eval"
	"github.com/msto63/alcc/foundation/rlang/lexer"
	"github.com/msto63/alcc/foundation/rlang/parser"
)

// Severity indicates how serious a diagnostic is
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// Label attaches a message to a source span. Exactly one label of a
// diagnostic with labels is primary.
type Label struct {
	Span    lexer.TextSpan
	Message string
	Primary bool
}

// Diagnostic is a user facing message about the source
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Labels   []Label
	Help     string
}

// Primary returns the primary label
func (d Diagnostic) Primary() (Label, bool) {
	for _, l := range d.Labels {
		if l.Primary {
			return l, true
		}
	}
	return Label{}, false
}

// FromError converts err into diagnostics. Joined errors produce one
// diagnostic each; errors without a source location produce a diagnostic
// without labels.
func FromError(err error) []Diagnostic {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *parser.Error:
		return []Diagnostic{fromParseError(e)}
	case *eval.Error:
		return []Diagnostic{fromEvalError(e)}
	case interface{ Unwrap() []error }:
		var diags []Diagnostic
		for _, inner := range e.Unwrap() {
			diags = append(diags, FromError(inner)...)
		}
		return diags
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			if diags := FromError(inner); hasLabels(diags) {
				return diags
			}
		}
	}

	diag := Diagnostic{Severity: SeverityError, Message: err.Error()}
	if code := alccerr.GetCode(err); code != alccerr.CodeUnknown {
		diag.Code = code.String()
	}
	return []Diagnostic{diag}
}

func hasLabels(diags []Diagnostic) bool {
	for _, d := range diags {
		if len(d.Labels) > 0 {
			return true
		}
	}
	return false
}

func fromParseError(e *parser.Error) Diagnostic {
	diag := Diagnostic{
		Severity: SeverityError,
		Code:     string(e.Code),
		Message:  e.Message,
		Labels:   []Label{{Span: e.Span, Message: primaryMessage(e), Primary: true}},
	}

	if e.Related != nil {
		diag.Labels = append(diag.Labels, Label{Span: *e.Related, Message: "unclosed '(' opened here"})
	}

	switch e.Code {
	case parser.CodeLexicalAmbiguity:
		diag.Help = "rlang accepts digits, + - * / and parentheses"
	case parser.CodeNumberOverflow:
		diag.Help = "literals must lie between 0 and 9223372036854775807"
	case parser.CodeNestingTooDeep:
		diag.Help = "raise engine.max_depth or simplify the expression"
	}
	return diag
}

func primaryMessage(e *parser.Error) string {
	switch e.Code {
	case parser.CodeUnexpectedEndOfInput:
		return "expected an operand here"
	case parser.CodeUnmatchedParenthesis:
		if e.Related != nil {
			return "expected ')'"
		}
		return "no matching '('"
	case parser.CodeMalformedOperand:
		return "unexpected token"
	case parser.CodeLexicalAmbiguity:
		return "unrecognized character"
	case parser.CodeNumberOverflow:
		return "literal too large"
	case parser.CodeNestingTooDeep:
		return "nested too deeply"
	default:
		return ""
	}
}

func fromEvalError(e *eval.Error) Diagnostic {
	diag := Diagnostic{
		Severity: SeverityError,
		Code:     string(e.Code),
		Message:  e.Message,
		Labels:   []Label{{Span: e.Span, Message: "while evaluating this operator", Primary: true}},
	}
	if e.Code == eval.CodeDivisionByZero {
		diag.Labels[0].Message = "divisor evaluates to zero"
	}
	return diag
}

// Render formats diag against source:
//
//	error[UNMATCHED_PARENTHESIS]: expected ')' to close '(' ...
//	 --> 1:7
//	  |
//	1 | (1 + 2
//	  | -     ^ expected ')'
func Render(source string, diag Diagnostic) string {
	var b strings.Builder

	b.WriteString(diag.Severity.String())
	if diag.Code != "" {
		b.WriteString("[" + diag.Code + "]")
	}
	b.WriteString(": " + diag.Message + "\n")

	primary, ok := diag.Primary()
	if ok {
		lines := strings.Split(source, "\n")
		width := len(strconv.Itoa(maxLine(diag.Labels)))
		gutter := strings.Repeat(" ", width)

		fmt.Fprintf(&b, "%s--> %d:%d\n", gutter, primary.Span.Line, primary.Span.Column)
		fmt.Fprintf(&b, "%s |\n", gutter)

		for _, line := range labelLines(diag.Labels) {
			text := ""
			if line-1 < len(lines) {
				text = displayLine(lines[line-1])
			}
			fmt.Fprintf(&b, "%*d | %s\n", width, line, text)
			fmt.Fprintf(&b, "%s | %s\n", gutter, markers(diag.Labels, line))
		}
	}

	if diag.Help != "" {
		b.WriteString("help: " + diag.Help + "\n")
	}
	return b.String()
}

// RenderAll renders every diagnostic, separated by blank lines
func RenderAll(source string, diags []Diagnostic) string {
	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = Render(source, d)
	}
	return strings.Join(parts, "\n")
}

// markers builds the underline row of one source line. Primary labels use
// '^', others '-'; the message of the rightmost label follows the marks.
func markers(labels []Label, line int) string {
	var row []rune
	message := ""
	rightmost := -1

	for _, l := range labels {
		if l.Span.Line != line {
			continue
		}
		start := l.Span.Column - 1
		width := utf8.RuneCountInString(l.Span.Text)
		if width == 0 {
			width = 1
		}
		for len(row) < start+width {
			row = append(row, ' ')
		}
		mark := '-'
		if l.Primary {
			mark = '^'
		}
		for i := start; i < start+width; i++ {
			row[i] = mark
		}
		if start >= rightmost {
			rightmost = start
			message = l.Message
		}
	}

	out := string(row)
	if message != "" {
		out += " " + message
	}
	return strings.TrimRight(out, " ")
}

func labelLines(labels []Label) []int {
	seen := make(map[int]bool)
	var lines []int
	for _, l := range labels {
		if !seen[l.Span.Line] {
			seen[l.Span.Line] = true
			lines = append(lines, l.Span.Line)
		}
	}
	sort.Ints(lines)
	return lines
}

func maxLine(labels []Label) int {
	m := 1
	for _, l := range labels {
		if l.Span.Line > m {
			m = l.Span.Line
		}
	}
	return m
}

// displayLine replaces tabs and the carriage return so that one rune
// occupies one column
func displayLine(line string) string {
	line = strings.TrimSuffix(line, "\r")
	return strings.ReplaceAll(line, "\t", " ")
}
