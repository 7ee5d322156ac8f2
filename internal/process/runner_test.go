package process

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script in a temp dir and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on Windows")
	}
	path := filepath.Join(t.TempDir(), "tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestExecRunner_Stdout(t *testing.T) {
	script := writeScript(t, `echo "hello $1"`+"\n")

	out, err := NewExecRunner().Run(context.Background(), script, []string{"world"})
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestExecRunner_NotFound(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), "cartesi-definitely-missing-binary", nil)
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf), "expected *NotFoundError, got %T", err)
	assert.Equal(t, "cartesi-definitely-missing-binary", nf.Command)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecRunner_NotFoundAbsolutePath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	_, err := NewExecRunner().Run(context.Background(), missing, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecRunner_ExitCode(t *testing.T) {
	script := writeScript(t, "echo 'unknown command' >&2\nexit 125\n")

	_, err := NewExecRunner().Run(context.Background(), script, []string{"compose", "version"})
	require.Error(t, err)

	code, ok := ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 125, code)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "unknown command", exitErr.Stderr)
	assert.Contains(t, err.Error(), "exit code 125")
	assert.Contains(t, err.Error(), "compose version")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestExecRunner_Timeout(t *testing.T) {
	script := writeScript(t, "exec sleep 5\n")

	_, err := NewExecRunner(WithTimeout(50*time.Millisecond)).Run(context.Background(), script, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	_, isExit := ExitCode(err)
	assert.False(t, isExit)
}

func TestExitCode_NonExitError(t *testing.T) {
	_, ok := ExitCode(errors.New("boom"))
	assert.False(t, ok)
}
