package internal

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Creates the log handler for the given stream.
//
// Terminals get the pretty handler, with colored levels, written through a
// colorable stream so escape sequences are translated on Windows consoles.
// Anything else (CI logs, pipes) gets JSON, one record per line. Verbose adds
// source locations. The level follows [SetLogLevel].
func NewLogHandler(f *os.File, verbose bool) slog.Handler {
	if IsTerminal(f) {
		return newLogHandler(colorable.NewColorable(f), true, verbose)
	}
	return newLogHandler(f, false, verbose)
}

// Creates a handler writing to w. The terminal flag selects pretty output.
func newLogHandler(w io.Writer, terminal, verbose bool) slog.Handler {
	if terminal {
		return newPrettyHandler(w, verbose)
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     &logLevel,
		AddSource: verbose,
	})
}

// Whether the given file is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
