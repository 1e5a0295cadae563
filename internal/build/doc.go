// Package build drives the external CMake build and stages its executables.
//
// A build runs in three strictly sequential steps. The configuration is
// resolved from an environment snapshot by the cmake package. The external
// tool then runs twice inside the working directory: once to generate the
// build tree, and once to build and install it. The generate step must exit
// cleanly before the install step is attempted, and any non-zero exit aborts
// the build with the tool's trailing output attached. Finally every
// executable the install step wrote to the install prefix is copied into the
// package's commands directory, where the console-script shims expect to
// find them by name.
//
// Nothing is retried. The working directory is never cleaned so the external
// tool can rebuild incrementally, and re-running a build overwrites staged
// executables in place.
//
// Example usage:
//
//	rt := runtime.New(os.Stdout, os.Stderr)
//	result, err := build.Run(ctx, rt, rt, build.Options{
//	    Source:      ".",
//	    BuildLib:    "build/lib",
//	    BuildTemp:   "build/temp",
//	    Name:        "OpenImageIO",
//	    Interpreter: "/usr/bin/python3",
//	    Environ:     os.Environ(),
//	    Commands:    build.DefaultCommands,
//	})
//	if err != nil {
//	    return err
//	}
package build
