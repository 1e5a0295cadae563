package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/oiiobuild/internal"
	"github.com/cruciblehq/oiiobuild/internal/cli"
)

// The entry point for oiiobuild.
//
// Initializes logging, displays startup information, and executes the root
// command. If any error occurs during execution, it exits with a non-zero code.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "info", internal.Info())

	slog.Debug("oiiobuild is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The logger is reconfigured after flag parsing via cli.Execute.
func logger() *slog.Logger {
	handler := internal.NewLogHandler(os.Stderr, internal.IsVerbose())
	return slog.New(handler).WithGroup(internal.Name)
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
