// Package render formats rlang tokens, trees, results and diagnostics for
// the terminal. Without color the output is plain text, byte for byte the
// same as the uncolored renderings of the foundation packages.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/alcc/foundation/rlang/ast"
	"github.com/msto63/alcc/foundation/rlang/diagnostic"
	"github.com/msto63/alcc/foundation/rlang/eval"
	"github.com/msto63/alcc/foundation/rlang/lexer"
)

// Renderer formats output with or without color
type Renderer struct {
	theme Theme
	color bool
}

// New creates a renderer; color selects the default theme
func New(color bool) *Renderer {
	return &Renderer{theme: DefaultTheme(), color: color}
}

// NewWithTheme creates a coloring renderer with a custom theme
func NewWithTheme(theme Theme) *Renderer {
	return &Renderer{theme: theme, color: true}
}

// Color reports whether the renderer emits styled output
func (r *Renderer) Color() bool {
	return r.color
}

func (r *Renderer) paint(style lipgloss.Style, text string) string {
	if !r.color || text == "" {
		return text
	}
	return style.Render(text)
}

// Tokens renders one token per line: position, kind and text
func (r *Renderer) Tokens(tokens []lexer.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		pos := fmt.Sprintf("%-8s", fmt.Sprintf("%d:%d", tok.Span.Line, tok.Span.Column))
		kind := fmt.Sprintf("%-20s", tok.Kind.String())

		text := tok.Span.Text
		style := r.theme.Operator
		switch tok.Kind {
		case lexer.NumberLiteral:
			style = r.theme.Literal
			if tok.Overflow {
				text += " (overflow)"
			}
		case lexer.None:
			style = r.theme.Error
			text = strconv.Quote(text)
		}

		line := r.paint(r.theme.Position, pos) + r.paint(r.theme.Kind, kind) + r.paint(style, text)
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return b.String()
}

// Tree renders every statement of tree as an indented tree
func (r *Renderer) Tree(tree *ast.AST) string {
	dump := ast.DumpTree(tree)
	if !r.color {
		return dump
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(dump, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimLeft(strings.TrimSuffix(line, "\n"), " ")
		indent := strings.Repeat(" ", len(line)-len(strings.TrimLeft(line, " ")))

		name, rest, _ := strings.Cut(body, " ")
		b.WriteString(indent + r.paint(r.theme.Node, name))
		if rest != "" {
			style := r.theme.Operator
			switch name {
			case "NumberLiteral":
				style = r.theme.Literal
			case "ExpressionStatement":
				style = r.theme.Position
			}
			b.WriteString(" " + r.paint(style, rest))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Source prints every statement of tree back as canonical source
func (r *Renderer) Source(tree *ast.AST) string {
	var b strings.Builder
	for _, stmt := range tree.All() {
		b.WriteString(r.paint(r.theme.Source, ast.ASTToSource(stmt)) + "\n")
	}
	return b.String()
}

// Results renders "source => value" for every evaluated statement
func (r *Renderer) Results(results []eval.Result) string {
	var b strings.Builder
	for _, res := range results {
		b.WriteString(r.Result(res) + "\n")
	}
	return b.String()
}

// Result renders a single evaluated statement
func (r *Renderer) Result(res eval.Result) string {
	return r.paint(r.theme.Source, ast.ASTToSource(res.Statement)) +
		r.paint(r.theme.Arrow, " => ") +
		r.paint(r.theme.Value, strconv.FormatInt(res.Value, 10))
}

// Diagnostics renders every diagnostic of err against source
func (r *Renderer) Diagnostics(source string, err error) string {
	diags := diagnostic.FromError(err)
	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = r.Diagnostic(source, d)
	}
	return strings.Join(parts, "\n")
}

// Diagnostic renders one diagnostic with a caret underline
func (r *Renderer) Diagnostic(source string, d diagnostic.Diagnostic) string {
	plain := diagnostic.Render(source, d)
	if !r.color {
		return plain
	}

	var b strings.Builder
	for i, line := range strings.Split(strings.TrimSuffix(plain, "\n"), "\n") {
		switch {
		case i == 0:
			b.WriteString(r.header(d, line))
		case strings.HasPrefix(line, "help: "):
			b.WriteString(r.paint(r.theme.Help, "help:") + strings.TrimPrefix(line, "help:"))
		default:
			b.WriteString(r.gutterLine(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) header(d diagnostic.Diagnostic, line string) string {
	style := r.theme.Error
	switch d.Severity {
	case diagnostic.SeverityWarning:
		style = r.theme.Warning
	case diagnostic.SeverityNote:
		style = r.theme.Note
	}

	label, message, _ := strings.Cut(line, ": ")
	return r.paint(style, label) + ": " + message
}

// gutterLine colors "<n> | text", "    | markers" and " --> L:C" lines
func (r *Renderer) gutterLine(line string) string {
	if strings.Contains(line, "--> ") {
		return r.paint(r.theme.Gutter, line)
	}

	gutter, rest, ok := strings.Cut(line, "|")
	if !ok {
		return line
	}
	if strings.TrimSpace(gutter) != "" {
		// source line
		return r.paint(r.theme.Gutter, gutter+"|") + rest
	}

	marks := strings.TrimLeft(rest, " ")
	lead := rest[:len(rest)-len(marks)]
	end := strings.IndexFunc(marks, func(c rune) bool { return c != '^' && c != '-' && c != ' ' })
	if end < 0 {
		end = len(marks)
	}
	return r.paint(r.theme.Gutter, gutter+"|") + lead + r.paint(r.theme.Marker, marks[:end]) + marks[end:]
}
