package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/crillab/gophertable/bf"
	"github.com/crillab/gophertable/internal/logging"
	"github.com/crillab/gophertable/internal/report"
	"github.com/crillab/gophertable/table"
	"golang.org/x/term"
)

// Prompt is printed before each line in interactive mode.
const Prompt = "> "

// ErrReported is returned by Run when a program failed and the failure was already reported.
var ErrReported = errors.New("program failed")

// A Shell reads programs, and prints their truth table or a diagnostic.
// Every program is handled independently: nothing is carried from one to the next.
type Shell struct {
	in       io.Reader
	out      io.Writer
	reporter *report.Reporter
	opts     []table.Option
	markdown func(string) (string, error) // nil unless tables are rendered as Markdown
	logger   *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithTableOptions sets the options used to generate every table.
func WithTableOptions(opts ...table.Option) Option {
	return func(s *Shell) {
		s.opts = append(s.opts, opts...)
	}
}

// WithReporter sets the reporter used for failures (default: colored diagnostics on stderr).
func WithReporter(r *report.Reporter) Option {
	return func(s *Shell) {
		s.reporter = r
	}
}

// WithMarkdownRenderer renders tables as Markdown, passed through render before being printed.
func WithMarkdownRenderer(render func(string) (string, error)) Option {
	return func(s *Shell) {
		s.markdown = render
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// New returns a shell reading programs from in and writing tables to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{in: in, out: out}
	for _, opt := range opts {
		opt(s)
	}
	if s.reporter == nil {
		s.reporter = report.New(os.Stderr)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// NewGlamourRenderer returns a Markdown renderer for the terminal, suitable for WithMarkdownRenderer.
func NewGlamourRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// IsInteractive indicates whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Render parses src and returns the text of its truth table.
func (s *Shell) Render(src string) (string, error) {
	prog, err := bf.ParseString(src)
	if err != nil {
		return "", err
	}
	t, err := table.Generate(prog, append([]table.Option{table.WithLogger(s.logger)}, s.opts...)...)
	if err != nil {
		return "", err
	}
	if s.markdown != nil {
		return s.markdown(t.Markdown())
	}
	return t.String(), nil
}

// Exec handles a single program: its table is printed on success, else the failure is reported.
// The returned error is ErrReported for failed programs, or a write error.
func (s *Shell) Exec(src string) error {
	text, err := s.Render(src)
	if err != nil {
		s.logger.Debug("program failed", "kind", report.Kind(err), "error", err)
		s.reporter.Report(src, err)
		return ErrReported
	}
	_, err = fmt.Fprintln(s.out, text)
	return err
}

// RunOnce reads the whole input as one program and handles it.
func (s *Shell) RunOnce() error {
	data, err := io.ReadAll(s.in)
	if err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}
	return s.Exec(string(data))
}

// REPL prompts for programs, one per line, until the input ends or "exit" or "quit" is entered.
// Failed programs are reported and the loop goes on.
func (s *Shell) REPL() error {
	reader := bufio.NewReader(s.in)
	for {
		if _, err := io.WriteString(s.out, Prompt); err != nil {
			return err
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not read input: %w", err)
		}
		eof := err != nil
		src := strings.TrimSpace(line)
		switch {
		case src == "exit" || src == "quit":
			return nil
		case src != "":
			if err := s.Exec(line); err != nil && !errors.Is(err, ErrReported) {
				return err
			}
		}
		if eof {
			// Terminate the prompt line.
			_, err := io.WriteString(s.out, "\n")
			return err
		}
	}
}
