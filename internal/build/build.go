package build

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cruciblehq/oiiobuild/internal/cmake"
	"github.com/cruciblehq/oiiobuild/internal/paths"
	"github.com/cruciblehq/oiiobuild/internal/runtime"
)

// Controls a build.
type Options struct {
	Source        string   // Source tree root. Defaults to the current directory.
	BuildLib      string   // Build output tree the package is assembled in.
	BuildTemp     string   // Packaging tool's temporary build directory.
	Name          string   // Distribution name, the site directory below BuildLib.
	Interpreter   string   // Python interpreter the bindings are built for.
	Program       string   // External build tool. Defaults to "cmake".
	Environ       []string // Environment snapshot as "key=value" entries.
	Commands      []string // Executables that must be staged. Empty skips the check.
	InstallPrefix string   // Overrides the fixed install prefix. Tests only.
}

// Returned after a successful build.
type Result struct {
	WorkDir   string     // Directory the external tool ran in.
	Site      string     // Package site directory.
	Commands  string     // Directory holding the staged executables.
	Artifacts []Artifact // Staged executables.
}

// Resolves the configuration, runs the external build, and stages the
// installed executables.
//
// Relative paths in opts are made absolute first. The steps run in order and
// the first failure aborts the build.
func Run(ctx context.Context, exec runtime.Executor, fsys runtime.Filesystem, opts Options) (*Result, error) {
	if err := normalize(&opts); err != nil {
		return nil, err
	}

	env := cmake.ParseEnv(opts.Environ)
	site := paths.SiteDir(opts.BuildLib, opts.Name)
	workdir := cmake.WorkDir(env, opts.BuildTemp)

	cfg := cmake.Resolve(cmake.Input{
		Env:         env,
		Interpreter: opts.Interpreter,
		Source:      opts.Source,
		Site:        site,
	})

	slog.Info("building",
		"name", opts.Name,
		"source", opts.Source,
		"workdir", workdir,
		"site", site,
	)

	err := Invoke(ctx, exec, fsys, Invocation{
		Program: opts.Program,
		Source:  opts.Source,
		WorkDir: workdir,
		Config:  cfg,
		Environ: opts.Environ,
	})
	if err != nil {
		return nil, err
	}

	prefix := opts.InstallPrefix
	if prefix == "" {
		prefix = cfg.InstallPrefix()
	}

	commands := paths.CommandsDir(site)
	artifacts, err := Stage(fsys, paths.ExecutablesDir(prefix), commands)
	if err != nil {
		return nil, err
	}

	if err := VerifyCommands(artifacts, opts.Commands); err != nil {
		return nil, err
	}

	slog.Info("staged commands", "dir", commands, "count", len(artifacts))

	return &Result{
		WorkDir:   workdir,
		Site:      site,
		Commands:  commands,
		Artifacts: artifacts,
	}, nil
}

// Fills defaults and makes the tree paths absolute.
func normalize(opts *Options) error {
	if opts.Source == "" {
		opts.Source = "."
	}
	if opts.Program == "" {
		opts.Program = cmake.Program
	}

	for _, p := range []*string{&opts.Source, &opts.BuildLib, &opts.BuildTemp} {
		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
		*p = abs
	}

	if opts.Name == "" {
		return fmt.Errorf("%w: distribution name is required", ErrBuild)
	}
	return nil
}
