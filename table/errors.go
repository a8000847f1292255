package table

import (
	"errors"
	"fmt"

	"github.com/crillab/gophertable/bf"
)

var (
	ErrUnsupportedResult = errors.New("unsupported result type")
	ErrTooManyVariables  = errors.New("too many variables")
)

// UnsupportedResultError is returned when a program evaluates to something else than a bool.
type UnsupportedResultError struct {
	Value      bf.Value
	Vars       []string
	Assignment Assignment
}

func (e *UnsupportedResultError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: program evaluated to no value, expected bool", ErrUnsupportedResult)
	}
	return fmt.Sprintf("%s: program evaluated to %s %s, expected bool", ErrUnsupportedResult, e.Value.Type(), e.Value)
}

func (e *UnsupportedResultError) Unwrap() error { return ErrUnsupportedResult }

// EvalError is returned when the evaluator fails under one of the assignments.
// It wraps the evaluator's error.
type EvalError struct {
	Vars       []string
	Assignment Assignment
	Err        error
}

func (e *EvalError) Error() string {
	if len(e.Vars) == 0 {
		return fmt.Sprintf("evaluation failed: %v", e.Err)
	}
	return fmt.Sprintf("evaluation failed with %s: %v", e.Assignment.Format(e.Vars), e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }
