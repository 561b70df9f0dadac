// Package edacal implements an interactive floating-point calculator.
//
// A line of input is split into tokens, converted from infix to postfix order
// by operator precedence, and evaluated against a namespace of variables. The
// same postfix sequence also builds an expression tree, so a session can show
// the last expression in postfix, prefix, or tree form without recomputing it.
//
// Operators, from loosest to tightest: + and - (left-associative), * and /
// (left-associative), ^ (right-associative), then unary minus and sqrt. Since
// unary minus binds tighter than ^, "-2^2" is "(-2)^2". The variable ans holds
// the result of the last evaluated line.
//
package edacal
