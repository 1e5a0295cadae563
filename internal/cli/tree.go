package cli

import (
	"errors"
	"os/exec"
)

// Candidate interpreter names, in lookup order.
var interpreters = []string{"python3", "python"}

// Flags describing the source and build trees, shared by build and config.
type treeFlags struct {
	Source      string `help:"Source tree root." default:"." type:"path"`
	BuildLib    string `help:"Build output tree the package is assembled in." default:"build/lib" type:"path"`
	BuildTemp   string `help:"Temporary build directory. OIIO_CXX_BUILD_TMP_DIR takes precedence." default:"build/temp" type:"path"`
	Name        string `help:"Distribution name." default:"OpenImageIO"`
	Interpreter string `help:"Python interpreter the bindings are built for. Defaults to python3 on PATH." placeholder:"PATH"`
	CMake       string `name:"cmake" help:"External build tool." default:"cmake"`
}

// Returns the interpreter path, looking one up on PATH when not given.
func (f *treeFlags) interpreter() (string, error) {
	if f.Interpreter != "" {
		return f.Interpreter, nil
	}
	for _, name := range interpreters {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no python interpreter found on PATH; pass --interpreter")
}
