// Package runtime runs external tools and touches the host filesystem.
//
// A [Runtime] executes a [Command] as a blocking subprocess, streaming the
// tool's console output verbatim to the configured writers while keeping the
// most recent output for error reports. A non-zero exit is reported through
// [ExecResult.ExitCode] and is not an error; callers decide what a failure
// means. The same [Runtime] provides the few filesystem operations the build
// needs: idempotent directory creation, directory listing, and overwriting
// file copies that preserve permission bits.
//
// The [Executor] and [Filesystem] interfaces let the build package run
// against fakes in tests.
//
// Example usage:
//
//	rt := runtime.New(os.Stdout, os.Stderr)
//
//	result, err := rt.Exec(ctx, &runtime.Command{
//	    Program: "cmake",
//	    Args:    []string{"--build", ".", "--target", "install"},
//	    Dir:     "build/temp",
//	    Env:     os.Environ(),
//	})
//	if err != nil {
//	    return err
//	}
//	if result.ExitCode != 0 {
//	    return fmt.Errorf("cmake exited with %d", result.ExitCode)
//	}
package runtime
