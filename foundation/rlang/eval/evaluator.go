// File: evaluator.go
// Title: rlang Integer Evaluator
// Description: Evaluates rlang expressions with 64-bit integer arithmetic.
//              Division truncates toward zero; division by zero and
//              overflow are reported as errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial evaluator implementation

package eval

import (
	"errors"
	"fmt"
	"math"

	alcclog "github.com/msto63/alcc/foundation/core/log"
	"github.com/msto63/alcc/foundation/rlang/ast"
	"github.com/msto63/alcc/foundation/rlang/lexer"
)

// ErrorCode classifies an evaluation failure
type ErrorCode string

const (
	CodeDivisionByZero     ErrorCode = "DIVISION_BY_ZERO"
	CodeArithmeticOverflow ErrorCode = "ARITHMETIC_OVERFLOW"
)

// Sentinels for errors.Is
var (
	ErrDivisionByZero     = &Error{Code: CodeDivisionByZero}
	ErrArithmeticOverflow = &Error{Code: CodeArithmeticOverflow}
)

// Error is an evaluation failure located at the operator that failed
type Error struct {
	Code    ErrorCode
	Message string
	Expr    *ast.BinaryExpr
	Span    lexer.TextSpan // span of the operator
}

func (e *Error) Error() string {
	return fmt.Sprintf("evaluation error at line %d, column %d: %s", e.Span.Line, e.Span.Column, e.Message)
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Result pairs a statement with its value
type Result struct {
	Statement ast.Statement
	Value     int64
}

// Evaluator evaluates expressions. It implements ast.Visitor; visit methods
// return int64 values. An Evaluator is not safe for concurrent use.
type Evaluator struct {
	logger *alcclog.Logger
	err    *Error
}

// New creates an evaluator; a nil logger selects the default logger
func New(logger *alcclog.Logger) *Evaluator {
	if logger == nil {
		logger = alcclog.GetDefault()
	}
	return &Evaluator{logger: logger.WithField("component", "rlang-eval")}
}

// Evaluate computes the value of a node
func (e *Evaluator) Evaluate(node ast.Node) (int64, error) {
	e.err = nil
	value, _ := node.Accept(e).(int64)
	if e.err != nil {
		return 0, e.err
	}
	return value, nil
}

// EvaluateAST evaluates every statement of tree in order. Evaluation
// continues after a failing statement; the failures are joined.
func (e *Evaluator) EvaluateAST(tree *ast.AST) ([]Result, error) {
	results := make([]Result, 0, tree.Len())
	var errs []error

	for _, stmt := range tree.All() {
		value, err := e.Evaluate(stmt)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, Result{Statement: stmt, Value: value})
	}

	e.logger.Trace("evaluated statements", alcclog.Fields{
		"statements": tree.Len(),
		"failed":     len(errs),
	})
	return results, errors.Join(errs...)
}

func (e *Evaluator) VisitExpressionStatement(stmt *ast.ExpressionStatement) interface{} {
	return stmt.Expr.Accept(e)
}

func (e *Evaluator) VisitNumberLiteral(expr *ast.NumberLiteral) interface{} {
	return expr.Value
}

func (e *Evaluator) VisitGroupExpr(expr *ast.GroupExpr) interface{} {
	return expr.Inner.Accept(e)
}

func (e *Evaluator) VisitBinaryExpr(expr *ast.BinaryExpr) interface{} {
	left, _ := expr.Left.Accept(e).(int64)
	if e.err != nil {
		return int64(0)
	}
	right, _ := expr.Right.Accept(e).(int64)
	if e.err != nil {
		return int64(0)
	}

	value, code := apply(expr.Op, left, right)
	if code != "" {
		e.fail(code, expr, left, right)
		return int64(0)
	}
	return value
}

func (e *Evaluator) fail(code ErrorCode, expr *ast.BinaryExpr, left, right int64) {
	message := fmt.Sprintf("%d %s %d overflows a 64-bit integer", left, expr.Operator(), right)
	if code == CodeDivisionByZero {
		message = fmt.Sprintf("division of %d by zero", left)
	}
	e.err = &Error{Code: code, Message: message, Expr: expr, Span: expr.OpSpan}
}

// apply computes left op right, returning a non-empty code on failure
func apply(op lexer.Kind, left, right int64) (int64, ErrorCode) {
	switch op {
	case lexer.Plus:
		if (right > 0 && left > math.MaxInt64-right) || (right < 0 && left < math.MinInt64-right) {
			return 0, CodeArithmeticOverflow
		}
		return left + right, ""

	case lexer.Minus:
		if (right < 0 && left > math.MaxInt64+right) || (right > 0 && left < math.MinInt64+right) {
			return 0, CodeArithmeticOverflow
		}
		return left - right, ""

	case lexer.Asterisk:
		if left == 0 || right == 0 {
			return 0, ""
		}
		product := left * right
		if product/right != left || (left == -1 && right == math.MinInt64) || (right == -1 && left == math.MinInt64) {
			return 0, CodeArithmeticOverflow
		}
		return product, ""

	case lexer.ForwardSlash:
		if right == 0 {
			return 0, CodeDivisionByZero
		}
		if left == math.MinInt64 && right == -1 {
			return 0, CodeArithmeticOverflow
		}
		return left / right, ""

	default:
		panic(fmt.Sprintf("rlang eval: %s is not a binary operator", op))
	}
}
