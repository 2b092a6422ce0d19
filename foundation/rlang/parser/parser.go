// File: parser.go
// Title: rlang Recursive Descent Parser
// Description: Converts rlang tokens into an AST by recursive descent with
//              one function per precedence tier. Grammar:
//                expression := term (("+"|"-") term)*
//                term       := factor (("*"|"/") factor)*
//                factor     := NUMBER | "(" expression ")"
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	alcclog "github.com/msto63/alcc/foundation/core/log"
	"github.com/msto63/alcc/foundation/rlang/ast"
	"github.com/msto63/alcc/foundation/rlang/lexer"
)

// Parser holds a buffer of tokens and a cursor into it. The cursor never
// moves backwards and never passes the end of the buffer.
type Parser struct {
	tokens  []lexer.Token
	cursor  int
	depth   int
	logger  *alcclog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *alcclog.Logger

	// MaxDepth limits parenthesis nesting; 0 means unlimited
	MaxDepth int
}

// Option modifies Options
type Option func(*Options)

// WithLogger sets the logger
func WithLogger(logger *alcclog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMaxDepth limits parenthesis nesting
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// New creates a parser with an empty token buffer
func New(opts ...Option) *Parser {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = alcclog.GetDefault()
	}

	return &Parser{
		logger:  options.Logger.WithField("component", "rlang-parser"),
		options: options,
	}
}

// NewFromSource tokenizes source to completion and buffers the tokens
func NewFromSource(source string, opts ...Option) *Parser {
	p := New(opts...)
	p.AddTokens(lexer.Tokenize(source)...)

	p.logger.Trace("tokenized source", alcclog.Fields{
		"length": len(source),
		"tokens": len(p.tokens),
	})
	return p
}

// AddToken appends a token to the buffer
func (p *Parser) AddToken(tok lexer.Token) {
	p.tokens = append(p.tokens, tok)
}

// AddTokens appends tokens to the buffer
func (p *Parser) AddTokens(tokens ...lexer.Token) {
	p.tokens = append(p.tokens, tokens...)
}

// Position returns the cursor; Position() <= Len() always holds
func (p *Parser) Position() int {
	return p.cursor
}

// Len returns the number of buffered tokens
func (p *Parser) Len() int {
	return len(p.tokens)
}

// Peek returns the token offset positions after the cursor without
// consuming anything. It returns false beyond the end of the buffer.
func (p *Parser) Peek(offset int) (lexer.Token, bool) {
	i := p.cursor + offset
	if offset < 0 || i >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[i], true
}

// Current returns the token at the cursor. At the end of a buffer without
// an EOF token a synthetic EOF positioned after the last token is returned.
func (p *Parser) Current() lexer.Token {
	if tok, ok := p.Peek(0); ok {
		return tok
	}
	return p.endToken()
}

// Parse parses statements until the input is exhausted. A failed statement
// is reported and skipped up to the next ';' so later statements are still
// parsed. The returned AST holds every statement that parsed; the error
// joins every failure.
func (p *Parser) Parse() (*ast.AST, error) {
	tree := ast.New()
	var errs []error

	for {
		stmt, err := p.NextStatement()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		if stmt == nil {
			break
		}
		tree.Append(stmt)
	}

	if len(errs) > 0 {
		p.logger.Debug("parse finished with errors", alcclog.Fields{
			"statements": tree.Len(),
			"errors":     len(errs),
		})
	}
	return tree, errors.Join(errs...)
}

// NextStatement parses one statement. It returns (nil, nil) when no
// statement can start because the input is exhausted, and (nil, err) when
// a statement started but is malformed. A ';' after the statement is
// consumed.
func (p *Parser) NextStatement() (ast.Statement, error) {
	for p.Current().Kind == lexer.SemiColon {
		p.advance()
	}
	if p.atEnd() {
		return nil, nil
	}

	start := p.Current()
	expr, err := p.ParseExpression()
	if err != nil {
		p.logger.Debug("statement rejected", alcclog.Fields{
			"offset": start.Span.Start,
			"error":  err.Error(),
		})
		return nil, err
	}

	// A statement ends at ';' or EOF. A number or '(' may follow without a
	// separator and starts the next statement.
	switch tok := p.Current(); tok.Kind {
	case lexer.SemiColon:
		p.advance()
	case lexer.EOF, lexer.NumberLiteral, lexer.LeftParen:
	case lexer.None:
		return nil, newError(CodeLexicalAmbiguity, tok, "unrecognized character %s after expression", describe(tok))
	case lexer.RightParen:
		return nil, newError(CodeUnmatchedParenthesis, tok, "')' has no matching '('")
	default:
		return nil, newError(CodeMalformedOperand, tok, "expected an operator or ';' after expression, found %s", describe(tok))
	}

	p.logger.Trace("statement parsed", alcclog.Fields{
		"offset":     start.Span.Start,
		"expression": expr.String(),
	})
	return &ast.ExpressionStatement{Expr: expr}, nil
}

// ParseExpression parses one expression starting at the cursor
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseAdditive()
}

// parseAdditive parses term (("+"|"-") term)*
func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.Current().Kind == lexer.Plus || p.Current().Kind == lexer.Minus {
		op := p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Op:     op.Kind,
			OpSpan: op.Span,
			Left:   left,
			Right:  right,
		}
	}

	return left, nil
}

// parseMultiplicative parses factor (("*"|"/") factor)*
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.Current().Kind == lexer.Asterisk || p.Current().Kind == lexer.ForwardSlash {
		op := p.advance()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Op:     op.Kind,
			OpSpan: op.Span,
			Left:   left,
			Right:  right,
		}
	}

	return left, nil
}

// parseFactor parses NUMBER | "(" expression ")"
func (p *Parser) parseFactor() (ast.Expression, error) {
	tok := p.Current()

	switch tok.Kind {
	case lexer.NumberLiteral:
		if tok.Overflow {
			return nil, newError(CodeNumberOverflow, tok, "number %s does not fit in a 64-bit integer", tok.Span.Text)
		}
		p.advance()
		return &ast.NumberLiteral{Value: tok.Value, Span: tok.Span}, nil

	case lexer.LeftParen:
		return p.parseGroup()

	case lexer.EOF:
		return nil, newError(CodeUnexpectedEndOfInput, tok, "expected a number or '(' but input ended")

	case lexer.None:
		return nil, newError(CodeLexicalAmbiguity, tok, "unrecognized character %s", describe(tok))

	default:
		return nil, newError(CodeMalformedOperand, tok, "expected a number or '(', found %s", describe(tok))
	}
}

// parseGroup parses "(" expression ")"
func (p *Parser) parseGroup() (ast.Expression, error) {
	open := p.advance()

	p.depth++
	defer func() { p.depth-- }()
	if p.options.MaxDepth > 0 && p.depth > p.options.MaxDepth {
		return nil, newError(CodeNestingTooDeep, open, "parentheses nested deeper than %d", p.options.MaxDepth)
	}

	inner, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	closing := p.Current()
	switch closing.Kind {
	case lexer.RightParen:
		p.advance()
		return &ast.GroupExpr{Inner: inner, Open: open.Span, Close: closing.Span}, nil
	case lexer.None:
		return nil, newError(CodeLexicalAmbiguity, closing, "unrecognized character %s", describe(closing))
	}

	unmatched := newError(CodeUnmatchedParenthesis, closing,
		"expected ')' to close '(' at line %d, column %d, found %s",
		open.Span.Line, open.Span.Column, describe(closing))
	related := open.Span
	unmatched.Related = &related
	return nil, unmatched
}

// advance consumes the current token and returns it
func (p *Parser) advance() lexer.Token {
	if p.cursor >= len(p.tokens) {
		panic(fmt.Sprintf("rlang parser: cursor %d advanced past token buffer of length %d", p.cursor, len(p.tokens)))
	}
	tok := p.tokens[p.cursor]
	p.cursor++
	return tok
}

// atEnd reports whether the cursor sits on EOF or past the last token
func (p *Parser) atEnd() bool {
	return p.Current().Kind == lexer.EOF
}

// synchronize skips tokens up to and including the next ';', or up to EOF
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.advance().Kind == lexer.SemiColon {
			return
		}
	}
}

// endToken builds the EOF token reported at the end of a buffer that has
// no EOF token of its own
func (p *Parser) endToken() lexer.Token {
	if len(p.tokens) == 0 {
		return lexer.Token{Kind: lexer.EOF, Span: lexer.TextSpan{Line: 1, Column: 1}}
	}

	last := p.tokens[len(p.tokens)-1].Span
	return lexer.Token{
		Kind: lexer.EOF,
		Span: lexer.TextSpan{
			Start:  last.End,
			End:    last.End,
			Line:   last.Line,
			Column: last.Column + utf8.RuneCountInString(last.Text),
		},
	}
}
