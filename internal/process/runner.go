package process

//go:generate mockgen -source=runner.go -destination=mock_runner.go -package=process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Runner executes an external command and returns its standard output.
type Runner interface {
	// Run invokes name with args and blocks until it exits. A missing
	// executable yields a *NotFoundError and a non-zero exit an *ExitError.
	Run(ctx context.Context, name string, args []string) (string, error)
}

// ExecRunner is a Runner backed by os/exec.
type ExecRunner struct {
	logger  *zap.Logger
	timeout time.Duration
}

var _ Runner = (*ExecRunner)(nil)

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithLogger sets the logger used for per-invocation debug output.
func WithLogger(l *zap.Logger) Option {
	return func(r *ExecRunner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTimeout bounds every invocation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *ExecRunner) {
		r.timeout = d
	}
}

// NewExecRunner creates an ExecRunner with the given options.
func NewExecRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes name with args. Stdout is returned without its trailing newline.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Debug("running command", zap.String("command", name), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, name, args...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	stdout := strings.TrimRight(stdoutBuf.String(), "\r\n")
	if err == nil {
		r.logger.Debug("command succeeded", zap.String("command", name), zap.String("stdout", stdout))
		return stdout, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout, fmt.Errorf("running %s: %w", commandLine(name, args), ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		r.logger.Debug("command exited non-zero",
			zap.String("command", name),
			zap.Int("exit_code", exitErr.ExitCode()),
		)
		return stdout, &ExitError{
			Command: name,
			Args:    args,
			Code:    exitErr.ExitCode(),
			Stderr:  strings.TrimSpace(stderrBuf.String()),
		}
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug("command not found", zap.String("command", name), zap.Error(err))
		return stdout, &NotFoundError{Command: name, Err: err}
	}

	return stdout, fmt.Errorf("running %s: %w", commandLine(name, args), err)
}
