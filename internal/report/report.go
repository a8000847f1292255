package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/gophertable/bf"
	"github.com/crillab/gophertable/table"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Error kinds, as returned by Kind.
const (
	KindParse             = "parse"
	KindEval              = "eval"
	KindUnsupportedResult = "unsupported_result"
	KindTooManyVariables  = "too_many_variables"
	KindInternal          = "internal"
)

// Kind classifies an error returned while parsing a program or generating its table.
func Kind(err error) string {
	var (
		perr *bf.ParseError
		eerr *table.EvalError
	)
	switch {
	case errors.As(err, &perr):
		return KindParse
	case errors.Is(err, table.ErrUnsupportedResult):
		return KindUnsupportedResult
	case errors.Is(err, table.ErrTooManyVariables):
		return KindTooManyVariables
	case errors.As(err, &eerr):
		return KindEval
	default:
		return KindInternal
	}
}

// A Reporter writes diagnostics about failed programs, quoting their source.
type Reporter struct {
	out *termenv.Output
}

// New returns a Reporter writing to w.
// Colors are used when w is a terminal that supports them.
func New(w io.Writer) *Reporter {
	return &Reporter{out: termenv.NewOutput(w)}
}

// NewPlain returns a Reporter that never uses colors.
func NewPlain(w io.Writer) *Reporter {
	return &Reporter{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

func (r *Reporter) style(s, color string) termenv.Style {
	return r.out.String(s).Foreground(r.out.Color(color))
}

// Report writes a diagnostic for err, which happened while handling src.
func (r *Reporter) Report(src string, err error) {
	lines := strings.Split(strings.TrimRight(src, "\n"), "\n")
	gutter := len(strconv.Itoa(len(lines)))
	bar := r.style(strings.Repeat(" ", gutter)+" |", "12")

	var (
		perr  *bf.ParseError
		eerr  *table.EvalError
		uerr  *table.UnsupportedResultError
		msg   = err.Error()
		note  string
		caret = -1 // Line index of the caret, if any
	)
	switch {
	case errors.As(err, &perr):
		msg = perr.Msg
		caret = perr.Pos.Line - 1
	case errors.As(err, &eerr):
		msg = eerr.Err.Error()
		if len(eerr.Vars) > 0 {
			note = "while evaluating with " + eerr.Assignment.Format(eerr.Vars)
		}
	case errors.As(err, &uerr):
		if len(uerr.Vars) > 0 {
			note = "with " + uerr.Assignment.Format(uerr.Vars)
		}
	}

	fmt.Fprintf(r.out, "%s %s\n", r.style("error:", "9").Bold(), r.out.String(msg).Bold())
	if perr != nil {
		fmt.Fprintf(r.out, "%s %d:%d\n", r.style(strings.Repeat(" ", gutter)+"-->", "12"), perr.Pos.Line, perr.Pos.Column)
	}
	fmt.Fprintln(r.out, bar)
	for i, line := range lines {
		num := r.style(fmt.Sprintf("%*d |", gutter, i+1), "12")
		fmt.Fprintf(r.out, "%s %s\n", num, line)
		if i == caret {
			fmt.Fprintf(r.out, "%s %s%s\n", bar, strings.Repeat(" ", caretOffset(line, perr.Pos.Column)), r.style("^", "9").Bold())
		}
	}
	if note != "" {
		fmt.Fprintln(r.out, bar)
		fmt.Fprintf(r.out, "%s %s\n", r.style(strings.Repeat(" ", gutter)+" =", "12"), r.style("note: "+note, "14"))
	}
}

// caretOffset returns the display width of line before the given 1-based character column.
func caretOffset(line string, column int) int {
	runes := []rune(line)
	if column-1 >= len(runes) {
		return runewidth.StringWidth(line)
	}
	if column <= 1 {
		return 0
	}
	return runewidth.StringWidth(string(runes[:column-1]))
}
