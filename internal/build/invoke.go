package build

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cruciblehq/oiiobuild/internal/cmake"
	"github.com/cruciblehq/oiiobuild/internal/runtime"
)

// Describes one run of the external build tool.
type Invocation struct {
	Program string              // External tool, usually "cmake".
	Source  string              // Source tree root.
	WorkDir string              // Build directory, created if missing.
	Config  cmake.Configuration // Resolved configuration.
	Environ []string            // Environment passed to both phases.
}

// Runs the generate phase and then the build-and-install phase.
//
// The working directory is created first. Each phase blocks until the tool
// exits. A non-zero exit from the generate phase returns immediately; the
// install phase is never started.
func Invoke(ctx context.Context, exec runtime.Executor, fsys runtime.Filesystem, inv Invocation) error {
	if err := fsys.MkdirAll(inv.WorkDir); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	slog.Info("running cmake generation", "workdir", inv.WorkDir)
	generate := cmake.GenerateCommand(inv.Program, inv.Source, inv.WorkDir, inv.Config, inv.Environ)
	if err := runPhase(ctx, exec, "generate", generate); err != nil {
		return err
	}

	slog.Info("running cmake build", "workdir", inv.WorkDir)
	install := cmake.InstallCommand(inv.Program, inv.WorkDir, inv.Environ)
	return runPhase(ctx, exec, "install", install)
}

// Runs a single phase, turning a non-zero exit into [ErrCommandFailed].
func runPhase(ctx context.Context, exec runtime.Executor, phase string, cmd *runtime.Command) error {
	slog.Debug("exec", "phase", phase, "command", cmd.String())

	result, err := exec.Exec(ctx, cmd)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBuild, phase, err)
	}

	if result.ExitCode != 0 {
		return fmt.Errorf("%w: %s: exit code %d: %s", ErrCommandFailed, phase, result.ExitCode, lastLines(result.Output, 20))
	}

	return nil
}

// Returns at most n trailing lines of s, trimmed.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
