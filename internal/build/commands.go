package build

import (
	"fmt"
	"strings"
)

// Executables exposed as console scripts by the OpenImageIO package.
var DefaultCommands = []string{
	"oiiotool",
	"iinfo",
	"testtex",
	"maketx",
	"idiff",
	"igrep",
	"iconvert",
}

// Suffix accepted for staged executables on platforms that require one.
const exeSuffix = ".exe"

// Checks that every named command was staged.
//
// A command matches an artifact with the same name, or the same name plus
// ".exe". All missing names are reported together.
func VerifyCommands(artifacts []Artifact, names []string) error {
	staged := make(map[string]struct{}, len(artifacts))
	for _, a := range artifacts {
		staged[strings.TrimSuffix(a.Name, exeSuffix)] = struct{}{}
	}

	var missing []string
	for _, name := range names {
		if _, ok := staged[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCommand, strings.Join(missing, ", "))
	}
	return nil
}
