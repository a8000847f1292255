package bf

import (
	"fmt"
	"io"
	"strconv"
	"text/scanner"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokSep           // ";" or newline
	tokIdent
	tokBool
	tokNumber
	tokOp
)

type token struct {
	kind tokenKind
	text string // Text as written in the source
	op   string // Canonical operator, for tokOp only
	pos  scanner.Position
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "EOF"
	case tokSep:
		if t.text == "\n" {
			return "newline"
		}
	}
	return strconv.Quote(t.text)
}

// Word operators, mapped to their canonical form.
var keywords = map[string]string{
	"and":     "and",
	"or":      "or",
	"not":     "not",
	"xor":     "xor",
	"implies": "->",
	"iff":     "<->",
}

// Symbolic aliases, mapped to their canonical form.
var symbols = map[string]string{
	"&":  "and",
	"&&": "and",
	"∧":  "and",
	"|":  "or",
	"||": "or",
	"∨":  "or",
	"!":  "not",
	"~":  "not",
	"¬":  "not",
	"⊕":  "xor",
	"→":  "->",
	"↔":  "<->",
}

// lex splits the whole input into tokens.
// The last token is always tokEOF.
func lex(r io.Reader) ([]token, error) {
	var (
		s       scanner.Scanner
		scanErr error
	)
	s.Init(r)
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanComments | scanner.SkipComments
	s.Whitespace = 1<<'\t' | 1<<'\r' | 1<<' '
	s.Error = func(s *scanner.Scanner, msg string) {
		if scanErr == nil {
			scanErr = &ParseError{Pos: s.Pos(), Msg: msg}
		}
	}
	var toks []token
	for {
		tok := s.Scan()
		if scanErr != nil {
			return nil, scanErr
		}
		pos := s.Position
		text := s.TokenText()
		switch tok {
		case scanner.EOF:
			return append(toks, token{kind: tokEOF, pos: s.Pos()}), nil
		case '\n', ';':
			toks = append(toks, token{kind: tokSep, text: text, pos: pos})
		case scanner.Ident:
			switch text {
			case "true", "false":
				toks = append(toks, token{kind: tokBool, text: text, pos: pos})
			default:
				if op, ok := keywords[text]; ok {
					toks = append(toks, token{kind: tokOp, text: text, op: op, pos: pos})
				} else {
					toks = append(toks, token{kind: tokIdent, text: text, pos: pos})
				}
			}
		case scanner.Int, scanner.Float:
			toks = append(toks, token{kind: tokNumber, text: text, pos: pos})
		default:
			ops := scanOperator(&s, tok)
			if ops == nil {
				return nil, &ParseError{Pos: pos, Msg: fmt.Sprintf("unexpected character %q", text)}
			}
			for i, op := range ops {
				p := pos
				p.Column += i
				p.Offset += i
				canon := op
				if c, ok := symbols[op]; ok {
					canon = c
				}
				toks = append(toks, token{kind: tokOp, text: op, op: canon, pos: p})
			}
		}
	}
}

// scanOperator returns the operator(s) starting with tok, consuming the following
// characters of multi-character operators.
// It returns nil if tok starts no operator.
func scanOperator(s *scanner.Scanner, tok rune) []string {
	next := func(want rune) bool {
		if s.Peek() == want {
			s.Next()
			return true
		}
		return false
	}
	switch tok {
	case '&':
		if next('&') {
			return []string{"&&"}
		}
	case '|':
		if next('|') {
			return []string{"||"}
		}
	case '=':
		if next('=') {
			return []string{"=="}
		}
	case '!':
		if next('=') {
			return []string{"!="}
		}
	case '>':
		if next('=') {
			return []string{">="}
		}
	case '-':
		if next('>') {
			return []string{"->"}
		}
	case '<':
		if next('=') {
			return []string{"<="}
		}
		if next('-') {
			if next('>') {
				return []string{"<->"}
			}
			return []string{"<", "-"}
		}
	case '~', '+', '*', '/', '%', '(', ')', '∧', '∨', '¬', '⊕', '→', '↔':
	default:
		return nil
	}
	return []string{string(tok)}
}
