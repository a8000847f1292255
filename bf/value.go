package bf

import (
	"errors"
	"fmt"
	"strconv"
)

// A Value is the result of evaluating an expression.
// It is either a Bool or a Number.
type Value interface {
	Type() string
	String() string
}

// Bool is a boolean value.
type Bool bool

func (b Bool) Type() string   { return "bool" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Number is a numeric value.
type Number float64

func (n Number) Type() string   { return "number" }
func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A Context holds the variable bindings a program is evaluated against.
// It is mutable: assignments in the program rebind names in it.
type Context struct {
	vars map[string]Value
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{vars: make(map[string]Value)}
}

// Bind associates name with v, replacing any previous binding.
func (c *Context) Bind(name string, v Value) {
	c.vars[name] = v
}

// Lookup returns the value bound to name, if any.
func (c *Context) Lookup(name string) (Value, bool) {
	v, ok := c.vars[name]
	return v, ok
}

var (
	ErrUndefined      = errors.New("undefined variable")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrDivisionByZero = errors.New("division by zero")
	ErrEmptyProgram   = errors.New("empty program")
)

// EvalError is returned when a program cannot be evaluated.
// Kind is one of the Err* sentinels of this package.
type EvalError struct {
	Kind error
	Msg  string
}

func (e *EvalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *EvalError) Unwrap() error { return e.Kind }

func evalErrorf(kind error, format string, args ...any) error {
	return &EvalError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
