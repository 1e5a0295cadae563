package cli

import (
	"context"
	"log/slog"
	"os"
	"slices"

	"github.com/cruciblehq/oiiobuild/internal/build"
	"github.com/cruciblehq/oiiobuild/internal/runtime"
)

// Represents the 'oiiobuild build' command.
type BuildCmd struct {
	Tree           treeFlags `embed:""`
	Commands       []string  `name:"command" help:"Executable that must be staged. Repeatable; implies --verify-commands."`
	VerifyCommands bool      `help:"Check that the console-script executables (${commands}) were staged."`
}

// Executes the build command.
//
// Runs the CMake generate and install steps against the source tree, then
// copies the installed executables into the package's commands directory.
// Tool output is streamed to the console as it is produced.
func (c *BuildCmd) Run(ctx context.Context) error {
	opts, err := c.options(os.Environ())
	if err != nil {
		return err
	}

	rt := runtime.New(os.Stdout, os.Stderr)
	result, err := build.Run(ctx, rt, rt, opts)
	if err != nil {
		return err
	}

	for _, a := range result.Artifacts {
		slog.Info("staged", "name", a.Name, "digest", a.Digest.String())
	}
	return nil
}

// Converts the flags into build options for the given environment.
func (c *BuildCmd) options(environ []string) (build.Options, error) {
	interpreter, err := c.Tree.interpreter()
	if err != nil {
		return build.Options{}, err
	}

	opts := build.Options{
		Source:      c.Tree.Source,
		BuildLib:    c.Tree.BuildLib,
		BuildTemp:   c.Tree.BuildTemp,
		Name:        c.Tree.Name,
		Interpreter: interpreter,
		Program:     c.Tree.CMake,
		Environ:     environ,
		Commands:    c.commands(),
	}
	return opts, nil
}

// Returns the executables to verify after staging, or nil to skip the check.
func (c *BuildCmd) commands() []string {
	if len(c.Commands) > 0 {
		return c.Commands
	}
	if c.VerifyCommands {
		return slices.Clone(build.DefaultCommands)
	}
	return nil
}
