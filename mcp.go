package main

import (
	"github.com/crillab/gophertable/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server",
		Long: `Starts gophertable as an MCP server on stdin/stdout.
Agents can then call the truth_table tool with a program.
Logs are written to stderr so that they do not corrupt the JSON-RPC stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger.Info("starting MCP server (stdio)")
			return mcpserver.NewServer(Version, logger, cfg.ServerTableOptions()...).ServeStdio()
		},
	}
}
