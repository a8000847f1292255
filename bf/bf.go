package bf

import (
	"math"
	"strconv"
	"strings"
)

// An Expr is any kind of expression appearing in a program.
// It is not necessarily boolean.
type Expr interface {
	String() string
	Eval(ctx *Context) (Value, error)
}

// The "true" constant.
type trueConst struct{}

// True is the constant denoting a tautology.
var True Expr = trueConst{}

func (t trueConst) String() string                   { return "true" }
func (t trueConst) Eval(ctx *Context) (Value, error) { return Bool(true), nil }

// The "false" constant.
type falseConst struct{}

// False is the constant denoting a contradiction.
var False Expr = falseConst{}

func (f falseConst) String() string                   { return "false" }
func (f falseConst) Eval(ctx *Context) (Value, error) { return Bool(false), nil }

// Var generates a named variable in an expression.
func Var(name string) Expr {
	return variable{name: name}
}

// VarName returns the name of e if e is a variable reference.
func VarName(e Expr) (string, bool) {
	v, ok := e.(variable)
	return v.name, ok
}

type variable struct {
	name string
}

func (v variable) String() string {
	return v.name
}

func (v variable) Eval(ctx *Context) (Value, error) {
	val, ok := ctx.Lookup(v.name)
	if !ok {
		return nil, evalErrorf(ErrUndefined, "%s", v.name)
	}
	return val, nil
}

// Num generates a numeric constant.
func Num(v float64) Expr {
	return number(v)
}

type number float64

func (n number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (n number) Eval(ctx *Context) (Value, error) {
	return Number(n), nil
}

// Not represents a negation. It negates the given subformula.
func Not(f Expr) Expr {
	return not{f}
}

type not [1]Expr

func (n not) String() string {
	return "not(" + n[0].String() + ")"
}

func (n not) Eval(ctx *Context) (Value, error) {
	b, err := evalBool(n[0], ctx, "not")
	if err != nil {
		return nil, err
	}
	return Bool(!b), nil
}

// And generates a conjunction of subformulas.
func And(subs ...Expr) Expr {
	return and(subs)
}

type and []Expr

func (a and) String() string {
	return "and(" + joinExprs(a) + ")"
}

func (a and) Eval(ctx *Context) (Value, error) {
	res := true
	for _, s := range a {
		b, err := evalBool(s, ctx, "and")
		if err != nil {
			return nil, err
		}
		res = res && b
	}
	return Bool(res), nil
}

// Or generates a disjunction of subformulas.
func Or(subs ...Expr) Expr {
	return or(subs)
}

type or []Expr

func (o or) String() string {
	return "or(" + joinExprs(o) + ")"
}

func (o or) Eval(ctx *Context) (Value, error) {
	res := false
	for _, s := range o {
		b, err := evalBool(s, ctx, "or")
		if err != nil {
			return nil, err
		}
		res = res || b
	}
	return Bool(res), nil
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Expr) Expr {
	return or{not{f1}, f2}
}

// Eq indicates a subformula is equivalent to another one.
func Eq(f1, f2 Expr) Expr {
	return eq{f1, f2}
}

type eq [2]Expr

func (e eq) String() string {
	return "eq(" + joinExprs(e[:]) + ")"
}

func (e eq) Eval(ctx *Context) (Value, error) {
	x, y, err := evalBoolPair(e, ctx, "<->")
	if err != nil {
		return nil, err
	}
	return Bool(x == y), nil
}

// Xor indicates exactly one of the two given subformulas is true.
func Xor(f1, f2 Expr) Expr {
	return xor{f1, f2}
}

type xor [2]Expr

func (x xor) String() string {
	return "xor(" + joinExprs(x[:]) + ")"
}

func (x xor) Eval(ctx *Context) (Value, error) {
	a, b, err := evalBoolPair(x, ctx, "xor")
	if err != nil {
		return nil, err
	}
	return Bool(a != b), nil
}

// Neg represents the arithmetic negation of a numeric subexpression.
func Neg(e Expr) Expr {
	return neg{e}
}

type neg [1]Expr

func (n neg) String() string {
	return "-(" + n[0].String() + ")"
}

func (n neg) Eval(ctx *Context) (Value, error) {
	x, err := evalNumber(n[0], ctx, "-")
	if err != nil {
		return nil, err
	}
	return Number(-x), nil
}

// Arith generates a binary arithmetic operation.
// op is one of "+", "-", "*", "/" and "%".
func Arith(op string, l, r Expr) Expr {
	return binary{op: op, l: l, r: r}
}

// Cmp generates a comparison.
// op is one of "==", "!=", "<", "<=", ">" and ">=".
func Cmp(op string, l, r Expr) Expr {
	return binary{op: op, l: l, r: r}
}

type binary struct {
	op   string
	l, r Expr
}

func (b binary) String() string {
	return "(" + b.l.String() + " " + b.op + " " + b.r.String() + ")"
}

func (b binary) Eval(ctx *Context) (Value, error) {
	switch b.op {
	case "==", "!=":
		return b.evalEquality(ctx)
	}
	x, err := evalNumber(b.l, ctx, b.op)
	if err != nil {
		return nil, err
	}
	y, err := evalNumber(b.r, ctx, b.op)
	if err != nil {
		return nil, err
	}
	switch b.op {
	case "+":
		return Number(x + y), nil
	case "-":
		return Number(x - y), nil
	case "*":
		return Number(x * y), nil
	case "/":
		if y == 0 {
			return nil, evalErrorf(ErrDivisionByZero, "%s", b)
		}
		return Number(x / y), nil
	case "%":
		if y == 0 {
			return nil, evalErrorf(ErrDivisionByZero, "%s", b)
		}
		return Number(math.Mod(x, y)), nil
	case "<":
		return Bool(x < y), nil
	case "<=":
		return Bool(x <= y), nil
	case ">":
		return Bool(x > y), nil
	case ">=":
		return Bool(x >= y), nil
	default:
		panic("invalid binary operator " + b.op)
	}
}

func (b binary) evalEquality(ctx *Context) (Value, error) {
	x, err := b.l.Eval(ctx)
	if err != nil {
		return nil, err
	}
	y, err := b.r.Eval(ctx)
	if err != nil {
		return nil, err
	}
	if x.Type() != y.Type() {
		return nil, evalErrorf(ErrTypeMismatch, "cannot compare %s with %s", x.Type(), y.Type())
	}
	eq := x == y
	if b.op == "!=" {
		eq = !eq
	}
	return Bool(eq), nil
}

// Assign binds the value of e to name when evaluated.
// The assignment itself evaluates to the bound value.
func Assign(name string, e Expr) Expr {
	return assign{name: name, e: e}
}

type assign struct {
	name string
	e    Expr
}

func (a assign) String() string {
	return a.name + " = " + a.e.String()
}

func (a assign) Eval(ctx *Context) (Value, error) {
	v, err := a.e.Eval(ctx)
	if err != nil {
		return nil, err
	}
	ctx.Bind(a.name, v)
	return v, nil
}

// Walk traverses e in post-order, calling fn on every node, children first.
// Assignment targets are not nodes: only the assigned expression is visited.
func Walk(e Expr, fn func(Expr)) {
	switch e := e.(type) {
	case variable, number, trueConst, falseConst:
	case not:
		Walk(e[0], fn)
	case neg:
		Walk(e[0], fn)
	case and:
		for _, sub := range e {
			Walk(sub, fn)
		}
	case or:
		for _, sub := range e {
			Walk(sub, fn)
		}
	case eq:
		Walk(e[0], fn)
		Walk(e[1], fn)
	case xor:
		Walk(e[0], fn)
		Walk(e[1], fn)
	case binary:
		Walk(e.l, fn)
		Walk(e.r, fn)
	case assign:
		Walk(e.e, fn)
	default:
		panic("invalid expression type")
	}
	fn(e)
}

func joinExprs(exprs []Expr) string {
	strs := make([]string, len(exprs))
	for i, e := range exprs {
		strs[i] = e.String()
	}
	return strings.Join(strs, ", ")
}

func evalBool(e Expr, ctx *Context, op string) (bool, error) {
	v, err := e.Eval(ctx)
	if err != nil {
		return false, err
	}
	b, ok := v.(Bool)
	if !ok {
		return false, evalErrorf(ErrTypeMismatch, "%q expects bool operands, got %s", op, v.Type())
	}
	return bool(b), nil
}

// evalBoolPair evaluates both operands of a binary boolean operator, each exactly once.
func evalBoolPair(ops [2]Expr, ctx *Context, op string) (bool, bool, error) {
	x, err := evalBool(ops[0], ctx, op)
	if err != nil {
		return false, false, err
	}
	y, err := evalBool(ops[1], ctx, op)
	if err != nil {
		return false, false, err
	}
	return x, y, nil
}

func evalNumber(e Expr, ctx *Context, op string) (float64, error) {
	v, err := e.Eval(ctx)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Number)
	if !ok {
		return 0, evalErrorf(ErrTypeMismatch, "%q expects number operands, got %s", op, v.Type())
	}
	return float64(n), nil
}
