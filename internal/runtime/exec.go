package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"slices"

	"github.com/alessio/shellescape"
)

// Size of the output tail retained for diagnostics.
const outputTail = 8 << 10

// An external program invocation.
type Command struct {
	Program string   // Program name or path, resolved against PATH.
	Args    []string // Arguments, passed without shell interpretation.
	Dir     string   // Working directory. Empty uses the caller's.
	Env     []string // Environment as "key=value" entries. Nil inherits the caller's.
}

// Returns the command line as a shell-quoted string.
func (c *Command) String() string {
	return shellescape.QuoteCommand(c.argv())
}

// Returns the program followed by its arguments.
func (c *Command) argv() []string {
	return append([]string{c.Program}, c.Args...)
}

// Output of a command execution.
type ExecResult struct {
	ExitCode int    // Exit code of the process.
	Output   string // Trailing combined stdout and stderr.
}

// Runs a command on the host and waits for it to exit.
//
// The command line is echoed to stdout first. The tool's stdout and stderr
// are streamed unmodified to the runtime's writers; the last few kilobytes of
// both are kept in [ExecResult.Output]. The environment slice is copied so
// the caller's snapshot is never shared with the child. A non-zero exit code
// is not treated as an error; the caller decides. Failing to start the
// process is an error wrapping [ErrRuntime].
func (rt *Runtime) Exec(ctx context.Context, c *Command) (*ExecResult, error) {
	fmt.Fprintln(rt.stdout, c.String())

	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Dir = c.Dir
	if c.Env != nil {
		cmd.Env = slices.Clone(c.Env)
	}

	tail := newTailBuffer(outputTail)
	cmd.Stdout = io.MultiWriter(rt.stdout, tail)
	cmd.Stderr = io.MultiWriter(rt.stderr, tail)

	err := cmd.Run()
	if err == nil {
		return &ExecResult{ExitCode: 0, Output: tail.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return &ExecResult{ExitCode: exitErr.ExitCode(), Output: tail.String()}, nil
	}

	return nil, fmt.Errorf("%w: %s: %w", ErrRuntime, c.Program, err)
}
