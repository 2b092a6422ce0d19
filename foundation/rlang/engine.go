// File: engine.go
// Title: rlang High-Level Engine Interface
// Description: Provides a high-level interface that integrates the lexer,
//              parser and evaluator. Failures are returned as platform
//              errors carrying code, severity, span details and a request
//              id per compilation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial high-level engine implementation

package rlang

import (
	"errors"

	"github.com/google/uuid"

	alccerr "github.com/msto63/alcc/foundation/core/error"
	alcclog "github.com/msto63/alcc/foundation/core/log"
	"github.com/msto63/alcc/foundation/rlang/ast"
	"github.com/msto63/alcc/foundation/rlang/eval"
	"github.com/msto63/alcc/foundation/rlang/lexer"
	"github.com/msto63/alcc/foundation/rlang/parser"
)

const (
	// DefaultMaxSourceLength is used when Options.MaxSourceLength is zero
	DefaultMaxSourceLength = 64 * 1024

	// DefaultMaxDepth is used when Options.MaxDepth is zero
	DefaultMaxDepth = 256
)

// Options configures the engine
type Options struct {
	Logger *alcclog.Logger

	// MaxSourceLength limits the source size in bytes
	MaxSourceLength int

	// MaxDepth limits parenthesis nesting
	MaxDepth int
}

// Engine runs the rlang front-end. It holds no per-compilation state and
// is safe for concurrent use.
type Engine struct {
	logger  *alcclog.Logger
	options Options
}

// Compilation is the outcome of running every stage on one source
type Compilation struct {
	ID      string
	Source  string
	Tokens  []lexer.Token
	AST     *ast.AST
	Results []eval.Result
}

// NewEngine creates an engine, filling unset options with defaults
func NewEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = alcclog.GetDefault()
	}
	if opts.MaxSourceLength <= 0 {
		opts.MaxSourceLength = DefaultMaxSourceLength
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	logger := opts.Logger.WithField("component", "rlang-engine")
	logger.Debug("rlang engine initialized", alcclog.Fields{
		"maxSourceLength": opts.MaxSourceLength,
		"maxDepth":        opts.MaxDepth,
	})

	return &Engine{logger: logger, options: opts}
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.options
}

// Tokenize returns the tokens of source, ending with EOF. Unrecognized
// characters come back as None tokens; only an oversized source fails.
func (e *Engine) Tokenize(source string) ([]lexer.Token, error) {
	id := uuid.NewString()
	if err := e.checkLength(source, id, "rlang.Tokenize"); err != nil {
		return nil, err
	}
	return lexer.Tokenize(source), nil
}

// Parse builds the AST of source. On failure the returned AST still holds
// every statement that parsed.
func (e *Engine) Parse(source string) (*ast.AST, error) {
	id := uuid.NewString()
	if err := e.checkLength(source, id, "rlang.Parse"); err != nil {
		return nil, err
	}
	_, tree, err := e.parse(source, id)
	return tree, err
}

// Evaluate parses and evaluates source. Nothing is evaluated when parsing
// fails; evaluation continues past statements that fail.
func (e *Engine) Evaluate(source string) ([]eval.Result, error) {
	c, err := e.Compile(source)
	if c == nil {
		return nil, err
	}
	return c.Results, err
}

// Compile runs every stage and keeps the intermediate results. The
// returned compilation is nil only when the source is rejected before
// tokenizing.
func (e *Engine) Compile(source string) (*Compilation, error) {
	id := uuid.NewString()
	if err := e.checkLength(source, id, "rlang.Compile"); err != nil {
		return nil, err
	}

	logger := e.logger.WithRequestID(id)
	timer := logger.StartTimer("rlang.compile")

	tokens, tree, err := e.parse(source, id)
	c := &Compilation{ID: id, Source: source, Tokens: tokens, AST: tree}
	if err != nil {
		timer.WithField("error", err.Error()).Stop()
		return c, err
	}

	results, evalErr := eval.New(logger).EvaluateAST(tree)
	c.Results = results
	if evalErr != nil {
		err := wrap(evalErr, alccerr.CodeEvaluation, "evaluation failed", "rlang.Evaluate", id)
		timer.WithField("error", err.Error()).Stop()
		return c, err
	}

	timer.WithField("statements", tree.Len()).Stop()
	return c, nil
}

func (e *Engine) parse(source, id string) ([]lexer.Token, *ast.AST, error) {
	logger := e.logger.WithRequestID(id)
	tokens := lexer.Tokenize(source)

	p := parser.New(parser.WithLogger(logger), parser.WithMaxDepth(e.options.MaxDepth))
	p.AddTokens(tokens...)

	tree, err := p.Parse()
	if err != nil {
		code := alccerr.CodeSyntax
		if errors.Is(err, parser.ErrLexicalAmbiguity) {
			code = alccerr.CodeLexical
		}
		return tokens, tree, wrap(err, code, "parse failed", "rlang.Parse", id)
	}
	return tokens, tree, nil
}

func (e *Engine) checkLength(source, id, operation string) error {
	if len(source) <= e.options.MaxSourceLength {
		return nil
	}
	return alccerr.Newf("source of %d bytes exceeds the limit of %d bytes", len(source), e.options.MaxSourceLength).
		WithCode(alccerr.CodeInvalidLength).
		WithOperation(operation).
		WithRequestID(id).
		WithDetail("length", len(source)).
		WithDetail("max_length", e.options.MaxSourceLength)
}

// wrap converts a parser or evaluator error into a platform error. The
// first located failure contributes its code and position as details.
func wrap(err error, code alccerr.Code, message, operation, id string) *alccerr.Error {
	wrapped := alccerr.Wrap(err, message).
		WithCode(code).
		WithOperation(operation).
		WithRequestID(id).
		WithDetail("failures", countFailures(err))

	var span lexer.TextSpan
	var parseErr *parser.Error
	var evalErr *eval.Error
	switch {
	case errors.As(err, &parseErr):
		span = parseErr.Span
		wrapped.WithDetail("rlang_code", string(parseErr.Code))
	case errors.As(err, &evalErr):
		span = evalErr.Span
		wrapped.WithDetail("rlang_code", string(evalErr.Code))
	default:
		return wrapped
	}

	return wrapped.
		WithDetail("line", span.Line).
		WithDetail("column", span.Column).
		WithDetail("offset", span.Start)
}

func countFailures(err error) int {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}
