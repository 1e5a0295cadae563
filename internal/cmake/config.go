package cmake

import (
	"slices"

	"github.com/cruciblehq/oiiobuild/internal/paths"
)

// Name of the generator parameter. It is passed as -G rather than as a cache
// definition.
const Generator = "generator"

// Defaults for the overridable parameters.
const (
	DefaultGenerator   = "Ninja"
	DefaultBuildType   = "Release"
	DefaultCXXStandard = "17"
)

// Inputs to [Resolve].
type Input struct {
	Env         Env    // Environment snapshot.
	Interpreter string // Path to the Python interpreter the bindings are built for.
	Source      string // Source tree root passed to the generate step.
	Site        string // Package site directory inside the build output tree.
}

// A single configuration parameter.
type Param struct {
	Name  string
	Value string
}

// Renders the parameter as a cmake command-line argument.
func (p Param) Arg() string {
	if p.Name == Generator {
		return "-G=" + p.Value
	}
	return "-D" + p.Name + "=" + p.Value
}

// An ordered, immutable set of configuration parameters.
type Configuration struct {
	params []Param
}

// Resolves the configuration for the given inputs.
//
// The parameter order is fixed. Overridable parameters read the environment
// snapshot and fall back to their defaults; install locations use the fixed
// package layout; the remaining switches are pinned.
func Resolve(in Input) Configuration {
	env := in.Env
	return Configuration{params: []Param{
		{Generator, env.Get(EnvGenerator, DefaultGenerator)},
		{"CMAKE_BUILD_TYPE", env.Get(EnvBuildType, DefaultBuildType)},
		{"CMAKE_PREFIX_PATH", env.Get(EnvPrefixPath, "")},
		{"CMAKE_INSTALL_PREFIX", paths.InstallPrefix},
		{"CMAKE_INSTALL_LIBDIR", paths.LibDir(paths.InstallPrefix)},
		{"CMAKE_CXX_STANDARD", env.Get(EnvCXXStandard, DefaultCXXStandard)},
		{"BUILD_SHARED_LIBS", "ON"},
		{"Python_EXECUTABLE", in.Interpreter},
		{"PYTHON_SITE_DIR", in.Site},
		{"LINKSTATIC", "ON"},
		{"EXTRA_CPP_ARGS", env.Get(EnvExtraArgs, "")},
		{"OIIO_DOWNLOAD_MISSING_TESTDATA", "OFF"},
		{"OIIO_BUILD_TESTS", "OFF"},
		{"OPENCOLORIO_NO_CONFIG", "ON"},
		{"OIIO_BUILD_TOOLS", "ON"},
		{"USE_EXTERNAL_PUGIXML", "1"},
		{"BUILD_FMT_VERSION", "9.0.0"},
		{"VERBOSE", "1"},
	}}
}

// Returns a copy of the parameters in order.
func (c Configuration) Params() []Param {
	return slices.Clone(c.params)
}

// Returns the value of the named parameter and whether it is present.
func (c Configuration) Lookup(name string) (string, bool) {
	for _, p := range c.params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Returns the parameters rendered as cmake arguments, in order.
func (c Configuration) Args() []string {
	args := make([]string, 0, len(c.params))
	for _, p := range c.params {
		args = append(args, p.Arg())
	}
	return args
}

// Returns the install prefix the configuration hands to cmake.
func (c Configuration) InstallPrefix() string {
	v, _ := c.Lookup("CMAKE_INSTALL_PREFIX")
	return v
}

// Resolves the working directory for the external build.
//
// OIIO_CXX_BUILD_TMP_DIR wins when set and non-empty; otherwise buildTemp,
// the packaging tool's temporary build directory, is used.
func WorkDir(env Env, buildTemp string) string {
	return env.Get(EnvBuildTmpDir, buildTemp)
}
