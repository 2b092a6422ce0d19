// File: visitor_test.go
// Title: rlang AST Visitor Unit Tests
// Description: Tests for node validation, the AST container, Walk, Inspect
//              and the provided visitors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor test suite

package ast

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/msto63/alcc/foundation/rlang/lexer"
)

// Helper functions for creating test AST nodes on a single line

func span(start int, text string) lexer.TextSpan {
	return lexer.TextSpan{Start: start, End: start + len(text), Text: text, Line: 1, Column: start + 1}
}

func lit(value int64, start int) *NumberLiteral {
	return &NumberLiteral{Value: value, Span: span(start, strconv.FormatInt(value, 10))}
}

func bin(op lexer.Kind, opStart int, left, right Expression) *BinaryExpr {
	return &BinaryExpr{Op: op, OpSpan: span(opStart, op.Symbol()), Left: left, Right: right}
}

func group(open, close int, inner Expression) *GroupExpr {
	return &GroupExpr{Inner: inner, Open: span(open, "("), Close: span(close, ")")}
}

// createSampleStatement builds "1 + (10 / 100 - 1)"
func createSampleStatement() *ExpressionStatement {
	return &ExpressionStatement{
		Expr: bin(lexer.Plus, 2,
			lit(1, 0),
			group(4, 17,
				bin(lexer.Minus, 14,
					bin(lexer.ForwardSlash, 8, lit(10, 5), lit(100, 10)),
					lit(1, 16),
				),
			),
		),
	}
}

func createSampleTree() *AST {
	tree := New()
	tree.Append(createSampleStatement())
	// "2 * 3" placed after "; "
	tree.Append(&ExpressionStatement{Expr: bin(lexer.Asterisk, 22, lit(2, 20), lit(3, 24))})
	return tree
}

func TestAST_Container(t *testing.T) {
	tree := createSampleTree()

	if tree.Len() != 2 {
		t.Fatalf("Expected 2 statements, got %d", tree.Len())
	}

	statements := tree.Statements()
	statements[0] = nil
	if tree.At(0) == nil {
		t.Error("Statements must return a copy")
	}

	var seen []int
	for i := range tree.All() {
		seen = append(seen, i)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Errorf("All yielded %v", seen)
	}

	if got := tree.String(); got != "(1 + ((10 / 100) - 1)); (2 * 3)" {
		t.Errorf("String() = %q", got)
	}
}

func TestNode_Positions(t *testing.T) {
	stmt := createSampleStatement()

	if pos := stmt.Position(); pos.Offset != 0 || pos.Column != 1 {
		t.Errorf("statement position = %+v", pos)
	}
	if end := stmt.End(); end != 18 {
		t.Errorf("statement end = %d, want 18", end)
	}

	g := stmt.Expr.(*BinaryExpr).Right.(*GroupExpr)
	if g.Position().Offset != 4 || g.End() != 18 {
		t.Errorf("group range = [%d,%d)", g.Position().Offset, g.End())
	}
}

func TestSourceVisitor(t *testing.T) {
	got := FormatSource(createSampleTree())
	want := "1 + (10 / 100 - 1); 2 * 3"
	if got != want {
		t.Errorf("FormatSource() = %q, want %q", got, want)
	}

	if got := ASTToSource(createSampleStatement()); got != "1 + (10 / 100 - 1)" {
		t.Errorf("ASTToSource() = %q", got)
	}
}

func TestTreeVisitor(t *testing.T) {
	got := ASTToString(createSampleStatement())
	want := strings.Join([]string{
		"ExpressionStatement @1:1",
		"  BinaryExpr +",
		"    NumberLiteral 1",
		"    GroupExpr",
		"      BinaryExpr -",
		"        BinaryExpr /",
		"          NumberLiteral 10",
		"          NumberLiteral 100",
		"        NumberLiteral 1",
		"",
	}, "\n")

	if got != want {
		t.Errorf("ASTToString() =\n%s\nwant\n%s", got, want)
	}
}

func TestCollectorVisitor_PreOrder(t *testing.T) {
	collector := CollectNodes(createSampleStatement())

	var literals []int64
	for _, l := range collector.Literals {
		literals = append(literals, l.Value)
	}
	if got := fmtInts(literals); got != "1 10 100 1" {
		t.Errorf("literals in pre-order = %q, want %q", got, "1 10 100 1")
	}

	var ops []string
	for _, op := range collector.Operators {
		ops = append(ops, op.Operator())
	}
	if strings.Join(ops, "") != "+-/" {
		t.Errorf("operators in pre-order = %v, want [+ - /]", ops)
	}
	if len(collector.Groups) != 1 || len(collector.Statements) != 1 {
		t.Errorf("groups=%d statements=%d", len(collector.Groups), len(collector.Statements))
	}

	collector.Reset()
	if len(collector.Literals) != 0 || len(collector.Operators) != 0 {
		t.Error("Reset must clear collected nodes")
	}
}

func fmtInts(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, " ")
}

func TestInspect_PreOrder(t *testing.T) {
	var order []string
	Inspect(createSampleStatement(), func(n Node) bool {
		switch node := n.(type) {
		case *ExpressionStatement:
			order = append(order, "stmt")
		case *BinaryExpr:
			order = append(order, node.Operator())
		case *GroupExpr:
			order = append(order, "()")
		case *NumberLiteral:
			order = append(order, node.String())
		}
		return true
	})

	want := "stmt + 1 () - / 10 100 1"
	if got := strings.Join(order, " "); got != want {
		t.Errorf("Inspect order = %q, want %q", got, want)
	}
}

func TestInspect_SkipChildren(t *testing.T) {
	count := 0
	Inspect(createSampleStatement(), func(n Node) bool {
		count++
		_, isGroup := n.(*GroupExpr)
		return !isGroup
	})

	// stmt, +, 1, group
	if count != 4 {
		t.Errorf("expected 4 visited nodes, got %d", count)
	}
}

func TestValidationVisitor(t *testing.T) {
	if errs := ValidateAST(createSampleStatement()); len(errs) != 0 {
		t.Fatalf("valid tree reported errors: %v", errs)
	}

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "missing right operand",
			node: &ExpressionStatement{Expr: &BinaryExpr{Op: lexer.Plus, OpSpan: span(2, "+"), Left: lit(1, 0)}},
			want: "right operand is required",
		},
		{
			name: "non-operator kind",
			node: bin(lexer.Comma, 1, lit(1, 0), lit(2, 2)),
			want: "Comma is not a binary operator",
		},
		{
			name: "empty group",
			node: &GroupExpr{Open: span(0, "("), Close: span(1, ")")},
			want: "group is empty",
		},
		{
			name: "negative literal",
			node: &NumberLiteral{Value: -1, Span: span(0, "1")},
			want: "negative",
		},
		{
			name: "operands out of order",
			node: bin(lexer.Minus, 2, lit(5, 4), lit(3, 0)),
			want: "out of source order",
		},
		{
			name: "statement without expression",
			node: &ExpressionStatement{},
			want: "no expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateAST(tt.node)
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			if !strings.Contains(errs[0].Error(), tt.want) {
				t.Errorf("error %q does not contain %q", errs[0], tt.want)
			}
		})
	}
}

func TestMapVisitor(t *testing.T) {
	m := ASTToMap(createSampleStatement())

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var decoded struct {
		Type string `json:"type"`
		Expr struct {
			Type  string `json:"type"`
			Op    string `json:"op"`
			Right struct {
				Type string `json:"type"`
				Pos  int    `json:"pos"`
			} `json:"right"`
		} `json:"expr"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	if decoded.Type != "ExpressionStatement" || decoded.Expr.Op != "+" {
		t.Errorf("unexpected map: %s", data)
	}
	if decoded.Expr.Right.Type != "GroupExpr" || decoded.Expr.Right.Pos != 4 {
		t.Errorf("unexpected group: %s", data)
	}
}

type countingVisitor struct {
	statements int
}

func (c *countingVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	c.statements++
	return stmt.Expr.Accept(c)
}

func (c *countingVisitor) VisitNumberLiteral(expr *NumberLiteral) interface{} { return 1 }

func (c *countingVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	return expr.Left.Accept(c).(int) + expr.Right.Accept(c).(int)
}

func (c *countingVisitor) VisitGroupExpr(expr *GroupExpr) interface{} {
	return expr.Inner.Accept(c)
}

func TestWalk_ResultsInStatementOrder(t *testing.T) {
	visitor := &countingVisitor{}
	results := Walk(createSampleTree(), visitor)

	if visitor.statements != 2 {
		t.Errorf("expected 2 statements visited, got %d", visitor.statements)
	}
	if len(results) != 2 || results[0] != 4 || results[1] != 2 {
		t.Errorf("Walk results = %v, want [4 2]", results)
	}
}
