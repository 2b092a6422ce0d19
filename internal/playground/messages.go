package playground

import (
	"encoding/json"

	"github.com/msto63/alcc/foundation/rlang/diagnostic"
	"github.com/msto63/alcc/foundation/rlang/lexer"
)

// Client message types
const (
	TypeTokenize = "tokenize"
	TypeParse    = "parse"
	TypeEval     = "eval"
	TypePing     = "ping"
)

// Server message types
const (
	TypeTokens = "tokens"
	TypeAST    = "ast"
	TypeResult = "result"
	TypeError  = "error"
	TypePong   = "pong"
)

// Error codes of protocol failures; compiler failures carry the code of
// the platform error instead
const (
	CodeInvalidPayload = "invalid_payload"
	CodeUnknownType    = "unknown_type"
)

// Message represents a client message
type Message struct {
	Type    string          `json:"type"`              // "tokenize", "parse", "eval", "ping"
	ID      string          `json:"id,omitempty"`      // echoed in the response
	Payload json.RawMessage `json:"payload,omitempty"` // SourcePayload for compiler requests
}

// SourcePayload carries the source of a compiler request
type SourcePayload struct {
	Source string `json:"source"`
}

// Response represents a server message
type Response struct {
	Type    string      `json:"type"` // "tokens", "ast", "result", "error", "pong"
	ID      string      `json:"id,omitempty"`
	Session string      `json:"session"`
	Payload interface{} `json:"payload,omitempty"`
}

// TokenPayload describes one token
type TokenPayload struct {
	Kind     string `json:"kind"`
	Text     string `json:"text"`
	Value    int64  `json:"value,omitempty"`
	Overflow bool   `json:"overflow,omitempty"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// TokensPayload answers a tokenize request
type TokensPayload struct {
	Tokens []TokenPayload `json:"tokens"`
}

// ASTPayload answers a parse request
type ASTPayload struct {
	Statements []map[string]interface{} `json:"statements"`
	Source     string                   `json:"source"`
	Tree       string                   `json:"tree"`
}

// ResultEntry is the value of one statement
type ResultEntry struct {
	Source string `json:"source"`
	Value  int64  `json:"value"`
}

// ResultPayload answers an eval request
type ResultPayload struct {
	Results []ResultEntry `json:"results"`
}

// DiagnosticPayload locates one failure in the source
type DiagnosticPayload struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Rendered string `json:"rendered"`
}

// ErrorPayload represents an error payload. Results holds the statements
// that evaluated before the failure was reported.
type ErrorPayload struct {
	Code        string              `json:"code"`
	Message     string              `json:"message"`
	Diagnostics []DiagnosticPayload `json:"diagnostics,omitempty"`
	Results     []ResultEntry       `json:"results,omitempty"`
}

func tokenPayloads(tokens []lexer.Token) []TokenPayload {
	out := make([]TokenPayload, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenPayload{
			Kind:     tok.Kind.String(),
			Text:     tok.Span.Text,
			Value:    tok.Value,
			Overflow: tok.Overflow,
			Start:    tok.Span.Start,
			End:      tok.Span.End,
			Line:     tok.Span.Line,
			Column:   tok.Span.Column,
		}
	}
	return out
}

func diagnosticPayloads(source string, diags []diagnostic.Diagnostic) []DiagnosticPayload {
	out := make([]DiagnosticPayload, len(diags))
	for i, d := range diags {
		p := DiagnosticPayload{
			Code:     d.Code,
			Message:  d.Message,
			Rendered: diagnostic.Render(source, d),
		}
		if primary, ok := d.Primary(); ok {
			p.Line = primary.Span.Line
			p.Column = primary.Span.Column
			p.Start = primary.Span.Start
			p.End = primary.Span.End
		}
		out[i] = p
	}
	return out
}
