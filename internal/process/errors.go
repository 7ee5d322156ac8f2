package process

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched by errors.Is for any *NotFoundError.
var ErrNotFound = errors.New("executable not found")

// NotFoundError reports that the executable could not be located or started.
type NotFoundError struct {
	Command string
	Err     error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Is reports ErrNotFound so callers need not know the concrete type.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ExitError reports a command that started but exited with a non-zero code.
type ExitError struct {
	Command string
	Args    []string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command failed with exit code %d: %s", e.Code, commandLine(e.Command, e.Args))
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// ExitCode returns the exit code carried by err, if err wraps an *ExitError.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
