// File: lexer.go
// Title: rlang Lexical Analyzer
// Description: Converts rlang source into a lazy stream of tokens terminated
//              by a single EOF token. Lexing is total: unknown characters
//              become None tokens and are rejected by the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package lexer

import (
	"iter"
	"math"
	"unicode"
	"unicode/utf8"
)

// Lexer performs lexical analysis of rlang source
type Lexer struct {
	source    string
	cursor    int // byte offset; len(source)+1 once EOF was emitted
	line      int // line of cursor (1-based)
	column    int // rune column of cursor (1-based)
}

// New creates a new lexer for the given source
func New(source string) *Lexer {
	return &Lexer{source: source, line: 1, column: 1}
}

// Source returns the source being tokenized
func (l *Lexer) Source() string {
	return l.source
}

// Position returns the byte offset of the cursor
func (l *Lexer) Position() int {
	return l.cursor
}

// Reset restarts tokenization from the beginning of the source
func (l *Lexer) Reset() {
	l.cursor = 0
	l.line = 1
	l.column = 1
}

// NextToken returns the next token. The second result is false once the EOF
// token has been returned; every later call returns false as well.
func (l *Lexer) NextToken() (Token, bool) {
	if l.cursor > len(l.source) {
		return Token{}, false
	}

	l.skipWhitespace()

	start := l.cursor
	if start == len(l.source) {
		l.cursor++
		return Token{Kind: EOF, Span: l.span(start, start, l.column)}, true
	}

	if isDigit(l.source[start]) {
		return l.readNumber(), true
	}

	r, size := utf8.DecodeRuneInString(l.source[start:])
	column := l.column
	l.cursor += size
	l.column++
	return Token{Kind: KindOf(r), Span: l.span(start, l.cursor, column)}, true
}

// Tokens returns the remaining tokens as a lazy sequence
func (l *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.NextToken()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize returns all tokens of source, EOF included
func Tokenize(source string) []Token {
	l := New(source)
	var tokens []Token
	for tok := range l.Tokens() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// readNumber consumes a maximal run of ASCII digits
func (l *Lexer) readNumber() Token {
	start, column := l.cursor, l.column
	var value int64
	overflow := false

	for l.cursor < len(l.source) && isDigit(l.source[l.cursor]) {
		digit := int64(l.source[l.cursor] - '0')
		if !overflow && value > (math.MaxInt64-digit)/10 {
			overflow = true
			value = math.MaxInt64
		}
		if !overflow {
			value = value*10 + digit
		}
		l.cursor++
		l.column++
	}

	return Token{
		Kind:     NumberLiteral,
		Span:     l.span(start, l.cursor, column),
		Value:    value,
		Overflow: overflow,
	}
}

// skipWhitespace advances over Unicode whitespace, tracking lines
func (l *Lexer) skipWhitespace() {
	for l.cursor < len(l.source) {
		r, size := utf8.DecodeRuneInString(l.source[l.cursor:])
		if !unicode.IsSpace(r) {
			return
		}
		l.cursor += size
		l.column++
		if r == '\n' {
			l.line++
			l.column = 1
		}
	}
}

// span builds the span [start, end) starting at column on the current line
func (l *Lexer) span(start, end, column int) TextSpan {
	return TextSpan{
		Start:  start,
		End:    end,
		Text:   l.source[start:end],
		Line:   l.line,
		Column: column,
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
