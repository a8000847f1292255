package mcpserver

import (
	"context"
	"testing"

	"github.com/crillab/gophertable/internal/logging"
	"github.com/crillab/gophertable/table"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, s *Server, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = ToolName
	req.Params.Arguments = args
	res, err := s.HandleTruthTable(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	content, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content %T", res.Content[0])
	return content.Text
}

func TestHandleTruthTable(t *testing.T) {
	s := NewServer("test", logging.NewNop())
	res := call(t, s, map[string]any{"program": "not a"})
	assert.False(t, res.IsError)
	const want = `|-------+-------|
| a     | F     |
|-------+-------|
| false | true  |
| true  | false |
|-------+-------|`
	assert.Equal(t, want, text(t, res))
}

func TestHandleTruthTableOptions(t *testing.T) {
	s := NewServer("test", logging.NewNop(), table.WithBoolLabels("1", "0"), table.WithResultLabel("out"))
	res := call(t, s, map[string]any{"program": "a"})
	assert.False(t, res.IsError)
	assert.Contains(t, text(t, res), "| a | out |")
	assert.Contains(t, text(t, res), "| 1 | 1   |")
}

func TestHandleTruthTableErrors(t *testing.T) {
	s := NewServer("test", logging.NewNop())
	tests := []struct {
		args map[string]any
		want string
	}{
		{args: map[string]any{"program": "a $"}, want: `error: unexpected character "$"`},
		{args: map[string]any{"program": "a + 1"}, want: "type mismatch"},
		{args: map[string]any{}, want: "expected expression, found EOF"},
	}
	for _, tt := range tests {
		res := call(t, s, tt.args)
		assert.True(t, res.IsError)
		assert.Contains(t, text(t, res), tt.want)
	}
}
