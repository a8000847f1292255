package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crillab/gophertable/bf"
	"github.com/crillab/gophertable/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true)
	assert.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
result_label: out
true_label: "1"
false_label: "0"
max_variables: "12"
pretty: true
`)
	cfg, err := Load(path, true)
	require.NoError(t, err)
	want := Default()
	want.ResultLabel = "out"
	want.TrueLabel = "1"
	want.FalseLabel = "0"
	want.MaxVariables = 12
	want.Pretty = true
	assert.Equal(t, want, cfg)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "colour: red\n",
		"invalid yaml":   "result_label: [\n",
		"empty label":    "result_label: ''\n",
		"same labels":    "true_label: x\nfalse_label: x\n",
		"negative limit": "max_variables: -1\n",
		"huge limit":     "max_variables: 63\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content), true)
			assert.Error(t, err)
		})
	}
}

func TestTableOptions(t *testing.T) {
	cfg := Default()
	cfg.TrueLabel, cfg.FalseLabel, cfg.ResultLabel = "T", "F", "out"
	cfg.MaxVariables = 1
	prog, err := bf.ParseString("not p")
	require.NoError(t, err)
	tbl, err := table.Generate(prog, cfg.TableOptions()...)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"p", "out"}, {"F", "T"}, {"T", "F"}}, tbl.Rows)

	prog, err = bf.ParseString("p or q")
	require.NoError(t, err)
	_, err = table.Generate(prog, cfg.TableOptions()...)
	assert.ErrorIs(t, err, table.ErrTooManyVariables)
}

func TestServerTableOptions(t *testing.T) {
	tests := []struct {
		max  int
		want int
	}{
		{max: 0, want: ServerMaxVariables},
		{max: 24, want: ServerMaxVariables},
		{max: ServerMaxVariables, want: ServerMaxVariables},
		{max: 3, want: 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, serverLimit(tt.max), "max_variables %d", tt.max)
	}

	names := make([]string, ServerMaxVariables+1)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)
	}
	prog, err := bf.ParseString(strings.Join(names, " or "))
	require.NoError(t, err)
	_, err = table.Generate(prog, Default().ServerTableOptions()...)
	assert.ErrorIs(t, err, table.ErrTooManyVariables)
}
