package build

import (
	"context"
	"os"
	"testing"

	"github.com/cruciblehq/oiiobuild/internal/runtime"
)

// Records commands and answers with scripted exit codes.
type fakeExecutor struct {
	t        *testing.T
	exits    []int                            // Exit code per call; missing entries mean 0.
	err      error                            // Returned from every call when set.
	onExec   func(cmd *runtime.Command) error // Optional side effect per call.
	commands []*runtime.Command
	dirSeen  []bool // Whether cmd.Dir existed when each call started.
}

func (f *fakeExecutor) Exec(ctx context.Context, cmd *runtime.Command) (*runtime.ExecResult, error) {
	f.t.Helper()

	_, statErr := os.Stat(cmd.Dir)
	f.dirSeen = append(f.dirSeen, statErr == nil)
	f.commands = append(f.commands, cmd)

	if f.err != nil {
		return nil, f.err
	}
	if f.onExec != nil {
		if err := f.onExec(cmd); err != nil {
			f.t.Fatalf("onExec: %v", err)
		}
	}

	code := 0
	if i := len(f.commands) - 1; i < len(f.exits) {
		code = f.exits[i]
	}
	return &runtime.ExecResult{ExitCode: code, Output: "tool output\nlast line\n"}, nil
}

func hostFS() *runtime.Runtime {
	return runtime.New(nil, nil)
}
