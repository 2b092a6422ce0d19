// File: doc.go
// Title: rlang AST Package Documentation
// Description: Package ast defines the rlang syntax tree and its visitors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

/*
Package ast defines the syntax tree built by the rlang parser.

An AST is an ordered list of statements. The only statement kind is
ExpressionStatement; expressions are NumberLiteral, BinaryExpr and
GroupExpr. Every binary node owns its two operands, so a tree never shares
or cycles.

Visitors implement one method per node kind and are dispatched through
Accept. Walk drives a visitor over every statement of an AST; Inspect walks
a subtree in pre-order with a callback.

	tree, _ := parser.NewFromSource("1 + 2 * 3").Parse()
	fmt.Print(ast.DumpTree(tree))
	// ExpressionStatement @1:1
	//   BinaryExpr +
	//     NumberLiteral 1
	//     BinaryExpr *
	//       NumberLiteral 2
	//       NumberLiteral 3
*/
package ast
