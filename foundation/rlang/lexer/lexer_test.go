// File: lexer_test.go
// Title: rlang Lexer Unit Tests
// Description: Tests for tokenization of all token kinds, spans, EOF
//              handling, overflow and the round-trip property.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package lexer

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"
)

func kinds(tokens []Token) []Kind {
	result := make([]Kind, len(tokens))
	for i, tok := range tokens {
		result[i] = tok.Kind
	}
	return result
}

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Single literal",
			input: "42",
			expected: []Token{
				{Kind: NumberLiteral, Value: 42, Span: TextSpan{Start: 0, End: 2, Text: "42", Line: 1, Column: 1}},
				{Kind: EOF, Span: TextSpan{Start: 2, End: 2, Text: "", Line: 1, Column: 3}},
			},
		},
		{
			name:  "Binary expression with spacing",
			input: "1 +  23",
			expected: []Token{
				{Kind: NumberLiteral, Value: 1, Span: TextSpan{Start: 0, End: 1, Text: "1", Line: 1, Column: 1}},
				{Kind: Plus, Span: TextSpan{Start: 2, End: 3, Text: "+", Line: 1, Column: 3}},
				{Kind: NumberLiteral, Value: 23, Span: TextSpan{Start: 5, End: 7, Text: "23", Line: 1, Column: 6}},
				{Kind: EOF, Span: TextSpan{Start: 7, End: 7, Text: "", Line: 1, Column: 8}},
			},
		},
		{
			name:  "Multiple lines",
			input: "1\n\t* 2",
			expected: []Token{
				{Kind: NumberLiteral, Value: 1, Span: TextSpan{Start: 0, End: 1, Text: "1", Line: 1, Column: 1}},
				{Kind: Asterisk, Span: TextSpan{Start: 3, End: 4, Text: "*", Line: 2, Column: 2}},
				{Kind: NumberLiteral, Value: 2, Span: TextSpan{Start: 5, End: 6, Text: "2", Line: 2, Column: 4}},
				{Kind: EOF, Span: TextSpan{Start: 6, End: 6, Text: "", Line: 2, Column: 5}},
			},
		},
		{
			name:  "Unknown character",
			input: "a",
			expected: []Token{
				{Kind: None, Span: TextSpan{Start: 0, End: 1, Text: "a", Line: 1, Column: 1}},
				{Kind: EOF, Span: TextSpan{Start: 1, End: 1, Text: "", Line: 1, Column: 2}},
			},
		},
		{
			name:  "Multi-byte unknown character",
			input: "€1",
			expected: []Token{
				{Kind: None, Span: TextSpan{Start: 0, End: 3, Text: "€", Line: 1, Column: 1}},
				{Kind: NumberLiteral, Value: 1, Span: TextSpan{Start: 3, End: 4, Text: "1", Line: 1, Column: 2}},
				{Kind: EOF, Span: TextSpan{Start: 4, End: 4, Text: "", Line: 1, Column: 3}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q)\n got: %+v\nwant: %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLexer_AllSingleCharacterKinds(t *testing.T) {
	input := "+-*/(){}[]<>,\"':;="
	want := []Kind{
		Plus, Minus, Asterisk, ForwardSlash, LeftParen, RightParen,
		LeftBracket, RightBracket, LeftSquareBracket, RightSquareBracket,
		LeftAngleBracket, RightAngleBracket, Comma, DoubleQuote, SingleQuote,
		Colon, SemiColon, Equal, EOF,
	}

	got := Tokenize(input)
	if !reflect.DeepEqual(kinds(got), want) {
		t.Fatalf("got %v, want %v", kinds(got), want)
	}
	for i, tok := range got[:len(got)-1] {
		if tok.Kind.Symbol() != string(input[i]) {
			t.Errorf("token %d: Symbol() = %q, want %q", i, tok.Kind.Symbol(), string(input[i]))
		}
	}
}

func TestLexer_SampleExpression(t *testing.T) {
	got := Tokenize("1 + (10 / 100 - 1)")

	var names []string
	for _, tok := range got {
		names = append(names, tok.String())
	}

	want := "NumberLiteral(1) Plus LeftParen NumberLiteral(10) ForwardSlash " +
		"NumberLiteral(100) Minus NumberLiteral(1) RightParen EOF"
	if strings.Join(names, " ") != want {
		t.Errorf("got  %s\nwant %s", strings.Join(names, " "), want)
	}
}

func TestLexer_DigitOnlyInputs(t *testing.T) {
	inputs := []string{"0", "7", "007", "1234567890", "9223372036854775807"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens := Tokenize(input)
			if len(tokens) != 2 {
				t.Fatalf("expected 2 tokens, got %d: %v", len(tokens), tokens)
			}
			want, err := strconv.ParseInt(input, 10, 64)
			if err != nil {
				t.Fatalf("bad test input: %v", err)
			}
			if tokens[0].Kind != NumberLiteral || tokens[0].Value != want || tokens[0].Overflow {
				t.Errorf("got %+v, want NumberLiteral(%d)", tokens[0], want)
			}
			if tokens[1].Kind != EOF {
				t.Errorf("expected EOF, got %v", tokens[1])
			}
		})
	}
}

func TestLexer_Overflow(t *testing.T) {
	tokens := Tokenize("9223372036854775808 1")

	if !tokens[0].Overflow {
		t.Fatal("expected overflow flag")
	}
	if tokens[0].Value != math.MaxInt64 {
		t.Errorf("expected saturated value, got %d", tokens[0].Value)
	}
	if tokens[0].Span.Text != "9223372036854775808" {
		t.Errorf("overflowing literal must still span all digits, got %q", tokens[0].Span.Text)
	}
	if tokens[1].Kind != NumberLiteral || tokens[1].Value != 1 {
		t.Errorf("lexing must continue after overflow, got %v", tokens[1])
	}
}

func TestLexer_WhitespaceOnly(t *testing.T) {
	inputs := []string{"", " ", "\t\n\r ", "  "}

	for _, input := range inputs {
		tokens := Tokenize(input)
		if len(tokens) != 1 || tokens[0].Kind != EOF {
			t.Errorf("Tokenize(%q) = %v, want [EOF]", input, tokens)
		}
		if tokens[0].Span.Start != len(input) || !tokens[0].Span.IsEmpty() {
			t.Errorf("EOF span for %q = %v", input, tokens[0].Span)
		}
	}
}

func TestLexer_EOFOnce(t *testing.T) {
	l := New("1")

	if tok, ok := l.NextToken(); !ok || tok.Kind != NumberLiteral {
		t.Fatalf("expected literal, got %v %v", tok, ok)
	}
	if tok, ok := l.NextToken(); !ok || tok.Kind != EOF {
		t.Fatalf("expected EOF, got %v %v", tok, ok)
	}
	for i := 0; i < 3; i++ {
		if tok, ok := l.NextToken(); ok {
			t.Fatalf("expected exhausted stream, got %v", tok)
		}
	}
	if l.Position() != len(l.Source())+1 {
		t.Errorf("cursor must sit past the end, got %d", l.Position())
	}
}

func TestLexer_Reset(t *testing.T) {
	l := New("2*3")
	first := kinds(collect(l))

	l.Reset()
	second := kinds(collect(l))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Reset must restart the stream: %v vs %v", first, second)
	}
}

func TestLexer_TokensStopsEarly(t *testing.T) {
	l := New("1 2 3")
	count := 0
	for range l.Tokens() {
		count++
		if count == 2 {
			break
		}
	}

	tok, ok := l.NextToken()
	if !ok || tok.Value != 3 {
		t.Errorf("expected to resume at the third literal, got %v %v", tok, ok)
	}
}

func TestLexer_RoundTrip(t *testing.T) {
	inputs := []string{
		"1 + (10 /     100 -              1) ",
		"  12*  (3-4)/5\n;6",
		"{[<a>]} , \"'x' : = ;",
		"€ 1\t2",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens := Tokenize(input)
			var b strings.Builder
			cursor := 0
			for _, tok := range tokens {
				if tok.Span.Start < cursor {
					t.Fatalf("span %v overlaps previous token", tok.Span)
				}
				gap := input[cursor:tok.Span.Start]
				if strings.TrimSpace(gap) != "" {
					t.Fatalf("non-whitespace gap %q before %v", gap, tok)
				}
				b.WriteString(gap)
				if len(tok.Span.Text) != tok.Span.Len() {
					t.Fatalf("span text length mismatch: %v", tok.Span)
				}
				b.WriteString(tok.Span.Text)
				cursor = tok.Span.End
			}
			if b.String() != input {
				t.Errorf("round trip mismatch:\n got %q\nwant %q", b.String(), input)
			}
		})
	}
}

func TestLexer_Columns(t *testing.T) {
	tokens := Tokenize("€ 12\r\n\t(3 ∗ 4)\n  5")

	want := []struct {
		text         string
		line, column int
	}{
		{"€", 1, 1},
		{"12", 1, 3},
		{"(", 2, 2},
		{"3", 2, 3},
		{"∗", 2, 5},
		{"4", 2, 7},
		{")", 2, 8},
		{"5", 3, 3},
		{"", 3, 4},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, w := range want {
		span := tokens[i].Span
		if span.Text != w.text || span.Line != w.line || span.Column != w.column {
			t.Errorf("token %d = %q at %d:%d, want %q at %d:%d",
				i, span.Text, span.Line, span.Column, w.text, w.line, w.column)
		}
	}
}

func TestLexer_LongLine(t *testing.T) {
	const size = 64 * 1024
	input := strings.Repeat("1+", size/2)

	started := time.Now()
	tokens := Tokenize(input)
	elapsed := time.Since(started)

	if len(tokens) != size+1 {
		t.Fatalf("expected %d tokens, got %d", size+1, len(tokens))
	}
	last := tokens[len(tokens)-2]
	if last.Kind != Plus || last.Span.Line != 1 || last.Span.Column != size {
		t.Errorf("last token %v at %d:%d, want Plus at 1:%d", last.Kind, last.Span.Line, last.Span.Column, size)
	}
	if eof := tokens[len(tokens)-1]; eof.Span.Column != size+1 {
		t.Errorf("EOF at column %d, want %d", eof.Span.Column, size+1)
	}
	if elapsed > 2*time.Second {
		t.Errorf("tokenizing %d bytes took %v", size, elapsed)
	}
}

func BenchmarkTokenize_LongLine(b *testing.B) {
	input := strings.Repeat("1+", 32*1024)
	for i := 0; i < b.N; i++ {
		Tokenize(input)
	}
}

func TestLexer_Idempotence(t *testing.T) {
	input := "(1 + 2) * 3 - 4 / 5 ; x"
	first := Tokenize(input)
	second := Tokenize(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-tokenizing must yield identical tokens")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{None, "None"},
		{NumberLiteral, "NumberLiteral"},
		{SemiColon, "SemiColon"},
		{EOF, "EOF"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func collect(l *Lexer) []Token {
	var tokens []Token
	for tok := range l.Tokens() {
		tokens = append(tokens, tok)
	}
	return tokens
}
