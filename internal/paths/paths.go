package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "oiiobuild"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Name of the per-project defaults file, looked up in the working directory.
	ProjectConfigName = "oiiobuild.toml"
)

// Path to the user-level defaults file.
//
//	Linux:   $XDG_CONFIG_HOME/oiiobuild/config.toml
//	macOS:   ~/Library/Application Support/oiiobuild/config.toml
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, toolName, "config.toml")
}
