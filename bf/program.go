package bf

import (
	"strings"
	"text/scanner"
)

// A Stmt is a single statement of a program.
type Stmt struct {
	Expr Expr
	Pos  scanner.Position // Where the statement starts in the source
}

// A Program is an ordered sequence of statements.
type Program []Stmt

// Eval runs every statement in order against ctx and returns the value of the last one.
func (p Program) Eval(ctx *Context) (Value, error) {
	if len(p) == 0 {
		return nil, &EvalError{Kind: ErrEmptyProgram}
	}
	var res Value
	for _, stmt := range p {
		v, err := stmt.Expr.Eval(ctx)
		if err != nil {
			return nil, err
		}
		res = v
	}
	return res, nil
}

func (p Program) String() string {
	strs := make([]string, len(p))
	for i, stmt := range p {
		strs[i] = stmt.Expr.String()
	}
	return strings.Join(strs, "; ")
}

// Evaluator evaluates programs with Program.Eval.
type Evaluator struct{}

func (Evaluator) Eval(p Program, ctx *Context) (Value, error) {
	return p.Eval(ctx)
}
