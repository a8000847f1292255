/*
Package table renders exhaustive truth tables for boolean programs.

Given a parsed bf.Program, Generate discovers every variable the program references,
evaluates the program under each of the 2^n possible assignments of those variables,
and lays the results out as a fixed-width text table:

	|-------+-------+-------|
	| a     | b     | F     |
	|-------+-------+-------|
	| false | false | false |
	| false | true  | false |
	| true  | false | false |
	| true  | true  | true  |
	|-------+-------+-------|

Variables are sorted and deduplicated, and assignment i is the binary representation
of i, the first variable being the most significant bit.
A program without variables produces a table with a single row.

The number of rows doubles with each variable, so programs with more than 20 to 24
variables are impractical. WithMaxVariables can be used to reject them up front;
63 variables or more are always rejected with ErrTooManyVariables.

The program must evaluate to a bool under every assignment: any other value makes
Generate fail with an error matching ErrUnsupportedResult, and evaluation failures
abort the whole table with an *EvalError. No partial table is ever returned.
*/
package table
