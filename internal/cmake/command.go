package cmake

import "github.com/cruciblehq/oiiobuild/internal/runtime"

// Default program name for the external build tool.
const Program = "cmake"

// Configuration used for the multi-config build of the install target.
const installConfig = "Release"

// Builds the generate invocation.
//
// The source root comes first, followed by every configuration parameter in
// order. The command runs in workdir.
func GenerateCommand(program, source, workdir string, cfg Configuration, environ []string) *runtime.Command {
	return &runtime.Command{
		Program: program,
		Args:    append([]string{source}, cfg.Args()...),
		Dir:     workdir,
		Env:     environ,
	}
}

// Builds the build-and-install invocation for the tree in workdir.
func InstallCommand(program, workdir string, environ []string) *runtime.Command {
	return &runtime.Command{
		Program: program,
		Args:    []string{"--build", ".", "--target", "install", "--config", installConfig},
		Dir:     workdir,
		Env:     environ,
	}
}
