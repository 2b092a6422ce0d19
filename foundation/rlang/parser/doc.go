// File: doc.go
// Title: rlang Parser Package Documentation
// Description: Package parser builds rlang syntax trees from tokens.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

/*
Package parser implements a recursive descent parser for rlang.

Each precedence tier has its own function: additive operators (+ -) are
parsed by combining multiplicative operands, multiplicative operators (* /)
by combining factors. Both tiers loop, attaching every further operator to
the tree built so far, which makes all operators left-associative.
Parentheses restart at the additive tier.

A parser owns a token buffer. NewFromSource fills it from the lexer; New
creates an empty parser that is fed with AddToken. NextStatement parses
one statement at a time; Parse parses all of them and recovers from a
failed statement by skipping to the next ';'.

Failures are *Error values carrying a code, the offending token and its
span:

	_, err := parser.NewFromSource("(1 + 2").Parse()
	if errors.Is(err, parser.ErrUnmatchedParenthesis) {
		var perr *parser.Error
		errors.As(err, &perr)
		fmt.Println(perr.Related) // span of the open parenthesis
	}

Malformed input never panics. A panic signals misuse of the parser
internals, such as advancing past the end of the buffer.
*/
package parser
