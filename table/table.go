package table

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/crillab/gophertable/bf"
	"github.com/mattn/go-runewidth"
)

// DefaultResultLabel is the header of the result column.
const DefaultResultLabel = "F"

// A Table is a fully materialized truth table.
// Rows[0] is the header; Widths holds, for each column, the display width of its widest cell.
type Table struct {
	Rows   [][]string
	Widths []int
}

// Header returns the header row.
func (t *Table) Header() []string { return t.Rows[0] }

// Data returns the data rows, one per assignment.
func (t *Table) Data() [][]string { return t.Rows[1:] }

type options struct {
	eval        Evaluator
	resultLabel string
	trueLabel   string
	falseLabel  string
	maxVars     int
	logger      *slog.Logger
}

// Option configures the way a table is generated.
type Option func(*options)

// WithEvaluator replaces the default evaluator, bf.Evaluator.
func WithEvaluator(eval Evaluator) Option {
	return func(o *options) {
		o.eval = eval
	}
}

// WithResultLabel sets the header of the result column (default: "F").
func WithResultLabel(label string) Option {
	return func(o *options) {
		o.resultLabel = label
	}
}

// WithBoolLabels sets the way true and false are displayed (default: "true" and "false").
func WithBoolLabels(t, f string) Option {
	return func(o *options) {
		o.trueLabel = t
		o.falseLabel = f
	}
}

// WithMaxVariables rejects programs with more than n variables.
// 0 means no limit besides the one enforced by Count.
func WithMaxVariables(n int) Option {
	return func(o *options) {
		o.maxVars = n
	}
}

// WithLogger sets the logger used to trace table generation.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		eval:        bf.Evaluator{},
		resultLabel: DefaultResultLabel,
		trueLabel:   "true",
		falseLabel:  "false",
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func (o *options) label(b bool) string {
	if b {
		return o.trueLabel
	}
	return o.falseLabel
}

// Build lays out the outcomes of the evaluation of a program over vars.
// Only the display options are taken into account.
func Build(vars []string, outcomes []Outcome, opts ...Option) *Table {
	return newOptions(opts).build(vars, outcomes)
}

func (o *options) build(vars []string, outcomes []Outcome) *Table {
	rows := make([][]string, 0, len(outcomes)+1)
	header := make([]string, 0, len(vars)+1)
	header = append(header, vars...)
	rows = append(rows, append(header, o.resultLabel))
	for _, out := range outcomes {
		row := make([]string, 0, len(vars)+1)
		for _, b := range out.Assignment {
			row = append(row, o.label(b))
		}
		rows = append(rows, append(row, o.label(out.Result)))
	}
	widths := make([]int, len(vars)+1)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return &Table{Rows: rows, Widths: widths}
}

// Generate evaluates prog under every assignment of its variables and builds the corresponding table.
func Generate(prog bf.Program, opts ...Option) (*Table, error) {
	o := newOptions(opts)
	vars := Variables(prog)
	if o.maxVars > 0 && len(vars) > o.maxVars {
		return nil, fmt.Errorf("%w: program has %d variables, limit is %d", ErrTooManyVariables, len(vars), o.maxVars)
	}
	o.logger.Debug("variables extracted", "count", len(vars), "vars", vars)
	outcomes, err := Evaluate(prog, vars, o.eval)
	if err != nil {
		return nil, err
	}
	t := o.build(vars, outcomes)
	o.logger.Debug("table built", "rows", len(outcomes), "widths", t.Widths)
	return t, nil
}

// Make generates the table of prog and renders it as text.
func Make(prog bf.Program, opts ...Option) (string, error) {
	t, err := Generate(prog, opts...)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}
