package runtime

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"syscall"
)

// Command describes one process to spawn.
type Command struct {
	Path   string
	Args   []string
	Dir    string   // working directory; empty means the current one
	Env    []string // nil inherits the current environment
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner spawns a command and waits for it. A process that starts and exits
// reports its exit code with a nil error, and one killed by a signal reports
// 128 plus the signal number. The error is reserved for failures to start or
// wait on the process and for cancellation.
type Runner interface {
	Run(ctx context.Context, cmd Command) (int, error)
}

// ExecRunner runs commands on the local host with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return -1, err
	}
	if code := exitErr.ExitCode(); code >= 0 {
		return code, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, ctxErr
	}
	return signalExitCode(exitErr), nil
}

// signalExitCode maps a process killed by a signal to the shell convention
// of 128 plus the signal number.
func signalExitCode(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
