// Package cmake resolves the CMake configuration for the OpenImageIO build.
//
// Resolution is a pure function of an environment snapshot, the interpreter
// path, the source root and the package site directory. Each overridable
// parameter takes its value from the snapshot when the variable is set and
// non-empty, and from a fixed default otherwise; an empty variable behaves
// exactly like an unset one. The remaining parameters are fixed toggles that
// no environment can change. The resulting [Configuration] keeps a stable
// parameter order, so identical inputs always yield identical arguments.
//
// The package also builds the two cmake invocations (generate, then build
// the install target) as [runtime.Command] values.
//
// Example usage:
//
//	cfg := cmake.Resolve(cmake.Input{
//	    Env:         cmake.ParseEnv(os.Environ()),
//	    Interpreter: "/usr/bin/python3",
//	    Source:      "/oiio",
//	    Site:        "/oiio/build/lib/OpenImageIO",
//	})
//	fmt.Println(cfg.Args())
package cmake
