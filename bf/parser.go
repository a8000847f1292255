package bf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
)

// ParseError is returned when the source of a program is not valid.
type ParseError struct {
	Pos scanner.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Msg)
}

type parser struct {
	toks []token
	i    int // Index of the current token
}

// Parse parses the program from the given input Reader.
// See the package documentation for the syntax.
func Parse(r io.Reader) (Program, error) {
	toks, err := lex(r)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks}
	return p.parseProgram()
}

// ParseString parses the program in src.
func ParseString(src string) (Program, error) {
	return Parse(strings.NewReader(src))
}

func (p *parser) cur() token {
	return p.toks[p.i]
}

func (p *parser) peek() token {
	if p.i+1 < len(p.toks) {
		return p.toks[p.i+1]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) scan() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
}

func (p *parser) is(op string) bool {
	t := p.cur()
	return t.kind == tokOp && t.op == op
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.cur().pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseProgram() (Program, error) {
	var prog Program
	for {
		for p.cur().kind == tokSep {
			p.scan()
		}
		if p.cur().kind == tokEOF {
			break
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog = append(prog, stmt)
		if k := p.cur().kind; k != tokSep && k != tokEOF {
			return nil, p.errorf("unexpected token %s, expected end of statement", p.cur())
		}
	}
	if len(prog) == 0 {
		return nil, p.errorf("expected expression, found EOF")
	}
	return prog, nil
}

func (p *parser) parseStmt() (Stmt, error) {
	start := p.cur()
	if next := p.peek(); start.kind == tokIdent && next.kind == tokOp && next.op == "=" {
		p.scan()
		p.scan()
		f, err := p.parseEquiv()
		if err != nil {
			return Stmt{}, err
		}
		return Stmt{Expr: Assign(start.text, f), Pos: start.pos}, nil
	}
	f, err := p.parseEquiv()
	if err != nil {
		return Stmt{}, err
	}
	return Stmt{Expr: f, Pos: start.pos}, nil
}

func (p *parser) parseEquiv() (f Expr, err error) {
	f, err = p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.is("<->") {
		p.scan()
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		f = Eq(f, f2)
	}
	return f, nil
}

func (p *parser) parseImplies() (f Expr, err error) {
	f, err = p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.is("->") {
		p.scan()
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseOr() (f Expr, err error) {
	subs, err := p.parseList("or", p.parseXor)
	if err != nil {
		return nil, err
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return Or(subs...), nil
}

func (p *parser) parseXor() (f Expr, err error) {
	f, err = p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.is("xor") {
		p.scan()
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		f = Xor(f, f2)
	}
	return f, nil
}

func (p *parser) parseAnd() (f Expr, err error) {
	subs, err := p.parseList("and", p.parseNot)
	if err != nil {
		return nil, err
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return And(subs...), nil
}

// parseList parses one or more operands separated by op.
func (p *parser) parseList(op string, operand func() (Expr, error)) ([]Expr, error) {
	f, err := operand()
	if err != nil {
		return nil, err
	}
	subs := []Expr{f}
	for p.is(op) {
		p.scan()
		f, err := operand()
		if err != nil {
			return nil, err
		}
		subs = append(subs, f)
	}
	return subs, nil
}

func (p *parser) parseNot() (f Expr, err error) {
	if p.is("not") {
		p.scan()
		f, err = p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseCompare()
}

func (p *parser) parseCompare() (f Expr, err error) {
	f, err = p.parseSum()
	if err != nil {
		return nil, err
	}
	for _, op := range []string{"==", "!=", "<", "<=", ">", ">="} {
		if p.is(op) {
			p.scan()
			f2, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			return Cmp(op, f, f2), nil
		}
	}
	return f, nil
}

func (p *parser) parseSum() (f Expr, err error) {
	f, err = p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.is("+") || p.is("-") {
		op := p.cur().op
		p.scan()
		f2, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		f = Arith(op, f, f2)
	}
	return f, nil
}

func (p *parser) parseTerm() (f Expr, err error) {
	f, err = p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.is("*") || p.is("/") || p.is("%") {
		op := p.cur().op
		p.scan()
		f2, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		f = Arith(op, f, f2)
	}
	return f, nil
}

func (p *parser) parseUnary() (f Expr, err error) {
	if p.is("-") {
		p.scan()
		f, err = p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (f Expr, err error) {
	t := p.cur()
	switch t.kind {
	case tokEOF:
		return nil, p.errorf("expected expression, found EOF")
	case tokBool:
		p.scan()
		if t.text == "true" {
			return True, nil
		}
		return False, nil
	case tokIdent:
		p.scan()
		return Var(t.text), nil
	case tokNumber:
		v, err := parseNumber(t.text)
		if err != nil {
			return nil, p.errorf("invalid number %q", t.text)
		}
		p.scan()
		return Num(v), nil
	case tokOp:
		if t.op == "(" {
			p.scan()
			f, err = p.parseEquiv()
			if err != nil {
				return nil, err
			}
			if p.cur().kind == tokEOF {
				return nil, p.errorf("expected closing parenthesis, found EOF")
			}
			if !p.is(")") {
				return nil, p.errorf("expected closing parenthesis, found %s", p.cur())
			}
			p.scan()
			return f, nil
		}
	}
	return nil, p.errorf("unexpected token %s", t)
}

func parseNumber(lit string) (float64, error) {
	if v, err := strconv.ParseFloat(lit, 64); err == nil {
		return v, nil
	}
	i, err := strconv.ParseInt(lit, 0, 64)
	if err != nil {
		return 0, err
	}
	return float64(i), nil
}
