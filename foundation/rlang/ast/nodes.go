// File: nodes.go
// Title: rlang AST Node Definitions
// Description: Defines the statement and expression nodes of the rlang AST
//              and the append-only AST container.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/msto63/alcc/foundation/rlang/lexer"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a fully parenthesized representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node's first character
	Position() Position

	// End returns the byte offset just past the node's last character
	End() int

	// Validate performs structural validation of the node
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based, in runes)
	Offset int // Byte offset (0-based)
}

// String returns line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionOf returns the start position of a span
func PositionOf(span lexer.TextSpan) Position {
	return Position{Line: span.Line, Column: span.Column, Offset: span.Start}
}

// Expression is implemented by NumberLiteral, BinaryExpr and GroupExpr only
type Expression interface {
	Node
	exprNode()
}

// Statement is implemented by ExpressionStatement only
type Statement interface {
	Node
	stmtNode()
}

// NumberLiteral is an integer literal leaf
type NumberLiteral struct {
	Value int64          // Literal value
	Span  lexer.TextSpan // Source span of the digits
}

// BinaryExpr applies one of + - * / to two exclusively owned operands
type BinaryExpr struct {
	Op     lexer.Kind     // Plus, Minus, Asterisk or ForwardSlash
	OpSpan lexer.TextSpan // Source span of the operator
	Left   Expression     // Left operand
	Right  Expression     // Right operand
}

// GroupExpr is a parenthesized expression
type GroupExpr struct {
	Inner Expression     // Grouped expression
	Open  lexer.TextSpan // Span of (
	Close lexer.TextSpan // Span of )
}

// ExpressionStatement wraps one top-level expression
type ExpressionStatement struct {
	Expr Expression
}

// NumberLiteral

func (n *NumberLiteral) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (n *NumberLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumberLiteral(n)
}

func (n *NumberLiteral) Position() Position {
	return PositionOf(n.Span)
}

func (n *NumberLiteral) End() int {
	return n.Span.End
}

func (n *NumberLiteral) Validate() error {
	if n.Value < 0 {
		return fmt.Errorf("literal value %d is negative", n.Value)
	}
	return nil
}

func (n *NumberLiteral) exprNode() {}

// BinaryExpr

func (be *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", nodeString(be.Left), be.Operator(), nodeString(be.Right))
}

// Operator returns the operator symbol
func (be *BinaryExpr) Operator() string {
	return be.Op.Symbol()
}

func (be *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(be)
}

func (be *BinaryExpr) Position() Position {
	if be.Left == nil {
		return PositionOf(be.OpSpan)
	}
	return be.Left.Position()
}

func (be *BinaryExpr) End() int {
	if be.Right == nil {
		return be.OpSpan.End
	}
	return be.Right.End()
}

func (be *BinaryExpr) Validate() error {
	if be.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if be.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if !be.Op.IsOperator() {
		return fmt.Errorf("%s is not a binary operator", be.Op)
	}
	if be.Left.End() > be.OpSpan.Start || be.OpSpan.End > be.Right.Position().Offset {
		return fmt.Errorf("operands of %s are out of source order", be.Operator())
	}
	return nil
}

func (be *BinaryExpr) exprNode() {}

// GroupExpr

func (g *GroupExpr) String() string {
	return "(" + nodeString(g.Inner) + ")"
}

func (g *GroupExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitGroupExpr(g)
}

func (g *GroupExpr) Position() Position {
	return PositionOf(g.Open)
}

func (g *GroupExpr) End() int {
	return g.Close.End
}

func (g *GroupExpr) Validate() error {
	if g.Inner == nil {
		return fmt.Errorf("group is empty")
	}
	if g.Inner.Position().Offset < g.Open.End || g.Inner.End() > g.Close.Start {
		return fmt.Errorf("group contents are outside its parentheses")
	}
	return nil
}

func (g *GroupExpr) exprNode() {}

// ExpressionStatement

func (s *ExpressionStatement) String() string {
	return nodeString(s.Expr)
}

func (s *ExpressionStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionStatement(s)
}

func (s *ExpressionStatement) Position() Position {
	if s.Expr == nil {
		return Position{}
	}
	return s.Expr.Position()
}

func (s *ExpressionStatement) End() int {
	if s.Expr == nil {
		return 0
	}
	return s.Expr.End()
}

func (s *ExpressionStatement) Validate() error {
	if s.Expr == nil {
		return fmt.Errorf("statement has no expression")
	}
	return nil
}

func (s *ExpressionStatement) stmtNode() {}

func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}

// AST is an append-only sequence of statements in source order
type AST struct {
	statements []Statement
}

// New creates an empty AST
func New() *AST {
	return &AST{}
}

// Append adds a statement at the end
func (a *AST) Append(stmt Statement) {
	a.statements = append(a.statements, stmt)
}

// Len returns the number of statements
func (a *AST) Len() int {
	return len(a.statements)
}

// At returns the i-th statement
func (a *AST) At(i int) Statement {
	return a.statements[i]
}

// Statements returns a copy of the statement list
func (a *AST) Statements() []Statement {
	return append([]Statement(nil), a.statements...)
}

// All iterates over the statements in source order
func (a *AST) All() iter.Seq2[int, Statement] {
	return func(yield func(int, Statement) bool) {
		for i, stmt := range a.statements {
			if !yield(i, stmt) {
				return
			}
		}
	}
}

// String returns the statements separated by "; "
func (a *AST) String() string {
	parts := make([]string, len(a.statements))
	for i, stmt := range a.statements {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, "; ")
}
