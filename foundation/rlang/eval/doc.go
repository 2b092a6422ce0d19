// File: doc.go
// Title: rlang Evaluator Package Documentation
// Description: Package eval computes the integer value of rlang expressions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package eval computes the value of rlang expressions as int64.
//
// Operators of the same tier associate to the left because the parser
// builds them that way; the evaluator simply folds the tree bottom-up.
// Division truncates toward zero, so 10 / 100 is 0 and (0 - 7) / 2 is -3.
package eval
