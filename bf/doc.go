// Package bf parses and evaluates small boolean formula programs.
//
// A program is a sequence of statements separated by semicolons or newlines.
// Each statement is either an expression or an assignment of an expression to a name.
// Evaluating a program runs every statement in order against a shared Context and
// yields the value of the last one.
//
// Formulas are written using the following operators (from lowest to highest priority):
//
// - for an equivalence, the "<->" or "iff" operator,
// - for an implication, the "->" or "implies" operator (right associative),
// - for a disjunction, the "or", "|" or "||" operator,
// - for an exclusive disjunction, the "xor" operator,
// - for a conjunction, the "and", "&" or "&&" operator,
// - for a negation, the "not", "!" or "~" unary operator.
//
// Numbers, arithmetic ("+", "-", "*", "/", "%") and comparisons ("==", "!=", "<", "<=", ">", ">=")
// are supported too, so that a program is not guaranteed to produce a boolean.
// Parentheses can be used to group subformulas.
//
// For example, the following program:
//
//	x = a and not b
//	x -> c
//
// Will be parsed as the two statements
//
//	x = and(a, not(b))
//	or(not(x), c)
//
// Values are either a Bool or a Number. Evaluating "a + 1" while a is bound to a Bool
// fails with an error wrapping ErrTypeMismatch.
package bf
