package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/crillab/gophertable/internal/logging"
	"github.com/crillab/gophertable/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command in a directory without config file.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const andTable = `|-------+-------+-------|
| a     | b     | F     |
|-------+-------+-------|
| false | false | false |
| false | true  | false |
| true  | false | false |
| true  | true  | true  |
|-------+-------+-------|
`

func TestRootArgs(t *testing.T) {
	out, errOut, err := run(t, "", "a", "and", "b")
	require.NoError(t, err)
	assert.Equal(t, andTable, out)
	assert.Empty(t, errOut)
}

func TestRootStdin(t *testing.T) {
	out, _, err := run(t, "a and b\n")
	require.NoError(t, err)
	assert.Equal(t, andTable, out)
}

func TestRootFailure(t *testing.T) {
	out, errOut, err := run(t, "", "a and")
	assert.ErrorIs(t, err, shell.ErrReported)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "error: expected expression, found EOF")
}

func TestRootFlags(t *testing.T) {
	out, _, err := run(t, "", "--result-label", "out", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "| a     | out   |")

	_, errOut, err := run(t, "", "--max-vars", "1", "a or b")
	assert.ErrorIs(t, err, shell.ErrReported)
	assert.Contains(t, errOut, "too many variables")

	_, _, err = run(t, "", "--max-vars", "100", "a")
	assert.ErrorContains(t, err, "max_variables must be between 0 and 62")

	_, _, err = run(t, "", "--log-level", "loud", "a")
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestRootConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("true_label: T\nfalse_label: F\nresult_label: r\n"), 0o644))
	out, _, err := run(t, "", "--config", path, "not a")
	require.NoError(t, err)
	const want = `|---+---|
| a | r |
|---+---|
| F | T |
| T | F |
|---+---|
`
	assert.Equal(t, want, out)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "a")
	assert.ErrorContains(t, err, "failed to read config")
}

func TestRootDefaultConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gophertable.yaml"), []byte("result_label: out\n"), 0o644))
	t.Chdir(dir)
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"a"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "| a     | out   |")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "gophertable version dev\n", out)
}

func TestServe(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	ctx, cancel := context.WithCancel(context.Background())
	srv := newHTTPServer(addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	assert.Equal(t, readHeaderTimeout, srv.ReadHeaderTimeout)
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, srv, logging.NewNop())
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
