package paths

import "path/filepath"

const (

	// Install prefix handed to CMake. The install step writes executables,
	// libraries and headers below it.
	InstallPrefix = "/oiio/dist"

	// Name of the package sub-directory that receives staged executables.
	// The console-script shims resolve executables by name inside it.
	CommandsDirName = "commands"
)

// Library directory handed to CMake for the given install prefix.
func LibDir(prefix string) string {
	return filepath.Join(prefix, "lib")
}

// Directory the install step writes executables to.
func ExecutablesDir(prefix string) string {
	return filepath.Join(prefix, "bin")
}

// Package site directory inside the build output tree.
//
// The site is the distribution name joined to the build library directory,
// e.g. build/lib/OpenImageIO.
func SiteDir(buildLib, name string) string {
	return filepath.Join(buildLib, name)
}

// Commands directory inside the given site directory.
func CommandsDir(site string) string {
	return filepath.Join(site, CommandsDirName)
}
