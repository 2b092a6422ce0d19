// File: doc.go
// Title: rlang Lexer Package Documentation
// Description: Package lexer tokenizes rlang arithmetic source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

/*
Package lexer converts rlang source text into tokens.

Whitespace is skipped and never tokenized. Digit runs become NumberLiteral
tokens, every other character is looked up in a fixed table of single
character kinds, and characters outside that table become None tokens.
The lexer never fails; rejecting None tokens is the parser's job.

Every token carries a TextSpan whose Text is the exact slice of source it
was read from. The stream ends with exactly one EOF token whose span is
empty and positioned at the end of the source.

	l := lexer.New("1 + (10 / 100 - 1)")
	for tok := range l.Tokens() {
		fmt.Println(tok)
	}
*/
package lexer
