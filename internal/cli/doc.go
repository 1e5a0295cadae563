// Parses flags and configures logging for oiiobuild.
//
// The tool accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//
// and the subcommands build, config and version. Flag defaults can be
// supplied by TOML files, read in order from the user configuration
// directory and from oiiobuild.toml in the working directory. Keys are flag
// names, with dashes or underscores:
//
//	build_lib       = "build/lib"
//	build_temp      = "build/temp"
//	verify_commands = true
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level and verbosity
// before the selected command runs.
package cli
