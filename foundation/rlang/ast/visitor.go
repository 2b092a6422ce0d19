// File: visitor.go
// Title: rlang AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing rlang AST nodes
//              and the printer, validation, collector and map visitors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Visitor has one method per node kind. A new node kind adds a method here,
// which makes every visitor fail to compile until it handles the kind.
type Visitor interface {
	VisitExpressionStatement(stmt *ExpressionStatement) interface{}
	VisitNumberLiteral(expr *NumberLiteral) interface{}
	VisitBinaryExpr(expr *BinaryExpr) interface{}
	VisitGroupExpr(expr *GroupExpr) interface{}
}

// Walk visits the statements of tree in order and returns the result of
// each Accept call.
func Walk(tree *AST, visitor Visitor) []interface{} {
	results := make([]interface{}, 0, tree.Len())
	for _, stmt := range tree.statements {
		results = append(results, stmt.Accept(visitor))
	}
	return results
}

// Inspect traverses node depth-first in pre-order: a binary node is passed
// to fn before its left subtree, the left subtree before the right one. If
// fn returns false the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *ExpressionStatement:
		Inspect(n.Expr, fn)
	case *BinaryExpr:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *GroupExpr:
		Inspect(n.Inner, fn)
	case *NumberLiteral:
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", node))
	}
}

// SourceVisitor prints nodes back as source with canonical spacing
type SourceVisitor struct {
	buffer strings.Builder
}

// NewSourceVisitor creates a new source visitor
func NewSourceVisitor() *SourceVisitor {
	return &SourceVisitor{}
}

// String returns the printed source
func (sv *SourceVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *SourceVisitor) Reset() {
	sv.buffer.Reset()
}

func (sv *SourceVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	if sv.buffer.Len() > 0 {
		sv.buffer.WriteString("; ")
	}
	stmt.Expr.Accept(sv)
	return nil
}

func (sv *SourceVisitor) VisitNumberLiteral(expr *NumberLiteral) interface{} {
	sv.buffer.WriteString(strconv.FormatInt(expr.Value, 10))
	return nil
}

func (sv *SourceVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	expr.Left.Accept(sv)
	sv.buffer.WriteString(" " + expr.Operator() + " ")
	expr.Right.Accept(sv)
	return nil
}

func (sv *SourceVisitor) VisitGroupExpr(expr *GroupExpr) interface{} {
	sv.buffer.WriteString("(")
	expr.Inner.Accept(sv)
	sv.buffer.WriteString(")")
	return nil
}

// TreeVisitor renders an indented dump with one node per line
type TreeVisitor struct {
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built tree
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) line(format string, args ...interface{}) {
	tv.buffer.WriteString(strings.Repeat("  ", tv.indent))
	tv.buffer.WriteString(fmt.Sprintf(format, args...))
	tv.buffer.WriteString("\n")
}

func (tv *TreeVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	tv.line("ExpressionStatement @%s", stmt.Position())
	tv.indent++
	stmt.Expr.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitNumberLiteral(expr *NumberLiteral) interface{} {
	tv.line("NumberLiteral %d", expr.Value)
	return nil
}

func (tv *TreeVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	tv.line("BinaryExpr %s", expr.Operator())
	tv.indent++
	expr.Left.Accept(tv)
	expr.Right.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitGroupExpr(expr *GroupExpr) interface{} {
	tv.line("GroupExpr")
	tv.indent++
	expr.Inner.Accept(tv)
	tv.indent--
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{errors: make([]error, 0)}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) check(kind string, node Node) bool {
	if err := node.Validate(); err != nil {
		vv.errors = append(vv.errors, fmt.Errorf("%s at %s: %w", kind, node.Position(), err))
		return false
	}
	return true
}

func (vv *ValidationVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	if vv.check("statement", stmt) {
		stmt.Expr.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitNumberLiteral(expr *NumberLiteral) interface{} {
	vv.check("literal", expr)
	return nil
}

func (vv *ValidationVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	vv.check("binary expression", expr)
	if expr.Left != nil {
		expr.Left.Accept(vv)
	}
	if expr.Right != nil {
		expr.Right.Accept(vv)
	}
	return nil
}

func (vv *ValidationVisitor) VisitGroupExpr(expr *GroupExpr) interface{} {
	if vv.check("group", expr) {
		expr.Inner.Accept(vv)
	}
	return nil
}

// CollectorVisitor collects nodes in pre-order
type CollectorVisitor struct {
	Statements []*ExpressionStatement
	Literals   []*NumberLiteral
	Operators  []*BinaryExpr
	Groups     []*GroupExpr
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Statements: make([]*ExpressionStatement, 0),
		Literals:   make([]*NumberLiteral, 0),
		Operators:  make([]*BinaryExpr, 0),
		Groups:     make([]*GroupExpr, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Statements = cv.Statements[:0]
	cv.Literals = cv.Literals[:0]
	cv.Operators = cv.Operators[:0]
	cv.Groups = cv.Groups[:0]
}

func (cv *CollectorVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	cv.Statements = append(cv.Statements, stmt)
	return stmt.Expr.Accept(cv)
}

func (cv *CollectorVisitor) VisitNumberLiteral(expr *NumberLiteral) interface{} {
	cv.Literals = append(cv.Literals, expr)
	return nil
}

func (cv *CollectorVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	cv.Operators = append(cv.Operators, expr)
	expr.Left.Accept(cv)
	expr.Right.Accept(cv)
	return nil
}

func (cv *CollectorVisitor) VisitGroupExpr(expr *GroupExpr) interface{} {
	cv.Groups = append(cv.Groups, expr)
	return expr.Inner.Accept(cv)
}

// MapVisitor converts nodes into nested maps suitable for JSON encoding
type MapVisitor struct{}

func (mv MapVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	return map[string]interface{}{
		"type": "ExpressionStatement",
		"pos":  stmt.Position().Offset,
		"end":  stmt.End(),
		"expr": stmt.Expr.Accept(mv),
	}
}

func (mv MapVisitor) VisitNumberLiteral(expr *NumberLiteral) interface{} {
	return map[string]interface{}{
		"type":  "NumberLiteral",
		"pos":   expr.Span.Start,
		"end":   expr.Span.End,
		"value": expr.Value,
	}
}

func (mv MapVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	return map[string]interface{}{
		"type":  "BinaryExpr",
		"pos":   expr.Position().Offset,
		"end":   expr.End(),
		"op":    expr.Operator(),
		"left":  expr.Left.Accept(mv),
		"right": expr.Right.Accept(mv),
	}
}

func (mv MapVisitor) VisitGroupExpr(expr *GroupExpr) interface{} {
	return map[string]interface{}{
		"type":  "GroupExpr",
		"pos":   expr.Open.Start,
		"end":   expr.Close.End,
		"inner": expr.Inner.Accept(mv),
	}
}

// Utility functions for working with visitors

// ValidateAST validates a node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// ASTToString renders a node as an indented tree
func ASTToString(node Node) string {
	visitor := NewTreeVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// ASTToSource prints a node back as source
func ASTToSource(node Node) string {
	visitor := NewSourceVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// ASTToMap converts a node into nested maps
func ASTToMap(node Node) map[string]interface{} {
	result, _ := node.Accept(MapVisitor{}).(map[string]interface{})
	return result
}

// CollectNodes collects the nodes below node in pre-order
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}

// DumpTree renders every statement of tree as an indented tree
func DumpTree(tree *AST) string {
	visitor := NewTreeVisitor()
	Walk(tree, visitor)
	return visitor.String()
}

// FormatSource prints every statement of tree back as source
func FormatSource(tree *AST) string {
	visitor := NewSourceVisitor()
	Walk(tree, visitor)
	return visitor.String()
}
