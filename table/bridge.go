package table

import "github.com/crillab/gophertable/bf"

// An Evaluator evaluates a whole program against a context and returns the value
// of its last statement.
type Evaluator interface {
	Eval(prog bf.Program, ctx *bf.Context) (bf.Value, error)
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(prog bf.Program, ctx *bf.Context) (bf.Value, error)

func (f EvaluatorFunc) Eval(prog bf.Program, ctx *bf.Context) (bf.Value, error) {
	return f(prog, ctx)
}

// An Outcome is the result of the program under one assignment.
type Outcome struct {
	Assignment Assignment
	Result     bool
}

// Evaluate evaluates prog under every assignment of vars, in enumeration order.
// A single context is used for all evaluations; every variable is rebound before each one.
// It fails on the first evaluation error, or as soon as the program yields a non-bool value.
func Evaluate(prog bf.Program, vars []string, eval Evaluator) ([]Outcome, error) {
	count, err := Count(len(vars))
	if err != nil {
		return nil, err
	}
	ctx := bf.NewContext()
	outcomes := make([]Outcome, 0, min(count, 1<<16))
	err = Enumerate(len(vars), func(_ uint64, a Assignment) error {
		for j, name := range vars {
			ctx.Bind(name, bf.Bool(a[j]))
		}
		v, err := eval.Eval(prog, ctx)
		if err != nil {
			return &EvalError{Vars: vars, Assignment: a, Err: err}
		}
		b, ok := v.(bf.Bool)
		if !ok {
			return &UnsupportedResultError{Value: v, Vars: vars, Assignment: a}
		}
		outcomes = append(outcomes, Outcome{Assignment: a, Result: bool(b)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}
