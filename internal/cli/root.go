package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/oiiobuild/internal"
	"github.com/cruciblehq/oiiobuild/internal/build"
	"github.com/cruciblehq/oiiobuild/internal/paths"
)

// Represents the root command for oiiobuild.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Build   BuildCmd   `cmd:"" help:"Build OpenImageIO with CMake and stage its executables."`
	Config  ConfigCmd  `cmd:"" help:"Print the resolved CMake generate command."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds the OpenImageIO native library through CMake and stages its command-line tools into the package tree."),
		kong.UsageOnError(),
		vars(),
		kong.Configuration(tomlLoader, paths.ConfigFile(), paths.ProjectConfigName),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Returns the interpolation variables for flag defaults.
func vars() kong.Vars {
	return kong.Vars{
		"version":  internal.Info().String(),
		"commands": strings.Join(build.DefaultCommands, ", "),
	}
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	internal.SetLogLevel(internal.LevelFor(debug, quiet))

	handler := internal.NewLogHandler(os.Stderr, verbose)
	slog.SetDefault(slog.New(handler).WithGroup(internal.Name))
}
