// Package mcpserver exposes truth table generation as a Model Context Protocol tool.
package mcpserver

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/crillab/gophertable/bf"
	"github.com/crillab/gophertable/internal/report"
	"github.com/crillab/gophertable/table"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolName is the name of the tool generating truth tables.
const ToolName = "truth_table"

// Server wraps an MCP server offering the truth_table tool.
type Server struct {
	opts      []table.Option
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server; tables are generated with opts.
func NewServer(version string, logger *slog.Logger, opts ...table.Option) *Server {
	s := &Server{
		opts:      opts,
		logger:    logger,
		mcpServer: server.NewMCPServer("gophertable", strings.TrimSpace(version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	tool := mcp.NewTool(ToolName,
		mcp.WithDescription("Print the truth table of a boolean program. "+
			"Every free variable ranges over false and true; the last statement gives the result column."),
		mcp.WithString("program", mcp.Required(), mcp.Description("The program, e.g. \"(a and b) -> c\"")),
	)
	s.mcpServer.AddTool(tool, s.HandleTruthTable)
}

// HandleTruthTable renders the table of the "program" argument.
// Failures are returned as tool errors carrying the diagnostic.
func (s *Server) HandleTruthTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src := request.GetString("program", "")
	prog, err := bf.ParseString(src)
	if err == nil {
		var t *table.Table
		t, err = table.Generate(prog, append([]table.Option{table.WithLogger(s.logger)}, s.opts...)...)
		if err == nil {
			return mcp.NewToolResultText(t.String()), nil
		}
	}
	s.logger.Debug("tool call failed", "tool", ToolName, "kind", report.Kind(err), "error", err)
	var buf bytes.Buffer
	report.NewPlain(&buf).Report(src, err)
	return mcp.NewToolResultError(buf.String()), nil
}
