package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/crillab/gophertable/internal/config"
	"github.com/crillab/gophertable/internal/logging"
	"github.com/crillab/gophertable/internal/report"
	"github.com/crillab/gophertable/internal/shell"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gophertable [program]",
		Short: "gophertable prints the truth table of boolean programs",
		Long: `gophertable evaluates a boolean program under every assignment of its free variables
and prints the result as a table.

The program is taken from the arguments if any, else from stdin.
When stdin is a terminal, programs are read one per line until "exit" or "quit".`,
		Example: `  gophertable 'a and b'
  gophertable 'x = a xor b; x -> c'
  echo 'not a' | gophertable`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runRoot,
	}
	flags := cmd.PersistentFlags()
	flags.String("config", config.DefaultPath, "Configuration file")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.Int("max-vars", 0, "Maximum number of variables of a program (0 means no limit)")
	flags.String("result-label", "", "Header of the result column")
	cmd.Flags().Bool("pretty", false, "Render tables as styled Markdown")

	cmd.AddCommand(newServeCmd(), newMCPCmd(), newVersionCmd())
	return cmd
}

// loadConfig reads the config file and applies the flags explicitly set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, flags.Changed("config"))
	if err != nil {
		return cfg, nil, err
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("max-vars") {
		cfg.MaxVariables, _ = flags.GetInt("max-vars")
	}
	if flags.Changed("result-label") {
		cfg.ResultLabel, _ = flags.GetString("result-label")
	}
	if f := flags.Lookup("pretty"); f != nil && f.Changed {
		cfg.Pretty, _ = flags.GetBool("pretty")
	}
	if f := flags.Lookup("listen"); f != nil && f.Changed {
		cfg.Listen, _ = flags.GetString("listen")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(cmd.ErrOrStderr(), level), nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts := []shell.Option{
		shell.WithTableOptions(cfg.TableOptions()...),
		shell.WithReporter(report.New(cmd.ErrOrStderr())),
		shell.WithLogger(logger),
	}
	if cfg.Pretty {
		render, err := shell.NewGlamourRenderer()
		if err != nil {
			return err
		}
		opts = append(opts, shell.WithMarkdownRenderer(render))
	}
	in := cmd.InOrStdin()
	sh := shell.New(in, cmd.OutOrStdout(), opts...)
	switch {
	case len(args) > 0:
		return sh.Exec(strings.Join(args, " "))
	case isTerminal(in):
		logger.Debug("starting interactive session")
		return sh.REPL()
	default:
		return sh.RunOnce()
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && shell.IsInteractive(f)
}
