package runtime

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
)

// Runs external commands.
type Executor interface {

	// Runs the command to completion. A non-zero exit code is returned in the
	// result, not as an error.
	Exec(ctx context.Context, cmd *Command) (*ExecResult, error)
}

// Filesystem operations used for staging.
type Filesystem interface {

	// Creates a directory and its parents. Existing directories are not an error.
	MkdirAll(path string) error

	// Lists the entry names of a directory. A missing directory yields an
	// error matching [fs.ErrNotExist].
	ReadDir(path string) ([]string, error)

	// Copies src to dst, replacing dst if it exists, and returns the digest
	// of the copied content.
	CopyFile(src, dst string) (digest.Digest, error)
}

// Executes commands and filesystem operations on the local host.
type Runtime struct {
	stdout io.Writer // Receives echoed command lines and tool stdout.
	stderr io.Writer // Receives tool stderr.
}

var (
	_ Executor   = (*Runtime)(nil)
	_ Filesystem = (*Runtime)(nil)
)

// Creates a runtime that streams tool output to the given writers.
//
// Nil writers discard output.
func New(stdout, stderr io.Writer) *Runtime {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &Runtime{stdout: stdout, stderr: stderr}
}
