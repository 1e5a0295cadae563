// Provides the fixed filesystem layout used by the build.
//
// Two kinds of paths live here. The package layout (install prefix,
// executables directory, site and commands directories) is a fixed
// convention shared with the CMake project and the packaging entry-point
// shims; callers never configure it. The user configuration file follows
// XDG conventions on Linux and platform-native conventions on macOS and
// Windows, with "oiiobuild" as the subdirectory under the base path.
package paths
