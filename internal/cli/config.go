package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cruciblehq/oiiobuild/internal/cmake"
	"github.com/cruciblehq/oiiobuild/internal/paths"
)

// Represents the 'oiiobuild config' command.
type ConfigCmd struct {
	Tree treeFlags `embed:""`
	Args bool      `help:"Print one configuration argument per line instead of the full command."`
}

// Executes the config command.
//
// Resolves the configuration exactly as a build would and prints it. Nothing
// is created and no external tool runs.
func (c *ConfigCmd) Run(ctx context.Context) error {
	return c.print(os.Stdout, os.Environ())
}

// Writes the resolved configuration for the given environment to w.
func (c *ConfigCmd) print(w io.Writer, environ []string) error {
	interpreter, err := c.Tree.interpreter()
	if err != nil {
		return err
	}

	env := cmake.ParseEnv(environ)
	cfg := cmake.Resolve(cmake.Input{
		Env:         env,
		Interpreter: interpreter,
		Source:      c.Tree.Source,
		Site:        paths.SiteDir(c.Tree.BuildLib, c.Tree.Name),
	})

	if c.Args {
		for _, arg := range cfg.Args() {
			fmt.Fprintln(w, arg)
		}
		return nil
	}

	workdir := cmake.WorkDir(env, c.Tree.BuildTemp)
	fmt.Fprintf(w, "# workdir: %s\n", workdir)
	fmt.Fprintln(w, cmake.GenerateCommand(c.Tree.CMake, c.Tree.Source, workdir, cfg, nil))
	fmt.Fprintln(w, cmake.InstallCommand(c.Tree.CMake, workdir, nil))
	return nil
}
