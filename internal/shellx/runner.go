// Package shellx runs administrative commands (docker exec, psql, redis-cli)
// synchronously with their output captured rather than streamed.
package shellx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result is the captured outcome of a finished command.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Name, e.Code, msg)
}

// Command describes one invocation. Stdin, when set, is fed to the process.
type Command struct {
	Name  string
	Args  []string
	Stdin []byte
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes a command and waits for it.
type Runner interface {
	Run(ctx context.Context, c Command) (Result, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct{}

// Run starts the command. A non-zero exit yields the captured Result and an
// *ExitError; a command that could not be started yields a plain error.
func (ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if c.Stdin != nil {
		cmd.Stdin = bytes.NewReader(c.Stdin)
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			res.ExitCode = ee.ExitCode()
			return res, &ExitError{Name: c.Name, Code: res.ExitCode, Stderr: stderr.String()}
		}
		return res, fmt.Errorf("run %s: %w", c.Name, err)
	}
	return res, nil
}
