// File: doc.go
// Title: rlang Package Documentation
// Description: Package rlang is the entry point to the rlang arithmetic
//              expression language front-end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

// Package rlang bundles the rlang front-end behind one Engine.
//
// The language has non-negative integer literals, the operators + - * / and
// parentheses. Statements are separated by ';':
//
//	1 + (10 / 100 - 1); 2 * 3
//
// The stages live in their own packages and can be used directly:
//
//	lexer      source to tokens with spans
//	parser     tokens to AST by recursive descent
//	ast        node types and visitors
//	eval       integer evaluation of the AST
//	diagnostic errors rendered against the source
//
// The Engine runs them with a shared logger and limits and reports
// failures as platform errors (foundation/core/error) with code RLANG_SYNTAX,
// RLANG_LEXICAL, RLANG_EVALUATION or INVALID_LENGTH:
//
//	engine := rlang.NewEngine(rlang.Options{MaxDepth: 64})
//	results, err := engine.Evaluate("1 + 2 * 3")
//	if err != nil {
//	    for _, d := range diagnostic.FromError(err) {
//	        fmt.Print(diagnostic.Render(source, d))
//	    }
//	}
package rlang
