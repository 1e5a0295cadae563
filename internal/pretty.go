package internal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// ANSI sequences used by the pretty handler.
const (
	ansiReset  = "\x1b[0m"
	ansiGray   = "\x1b[90m"
	ansiCyan   = "\x1b[36m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

// Human-oriented handler for interactive terminals.
//
// Each record is one line: the colored level, the message, then key=value
// attributes. Group names prefix attribute keys with a dot.
type prettyHandler struct {
	mu      *sync.Mutex // Serializes writes across derived handlers.
	w       io.Writer
	verbose bool     // Appends the source location of each record.
	prefix  string   // Group prefix for attributes added from now on.
	attrs   []string // Preformatted attributes from WithAttrs.
}

// Creates a new [prettyHandler] writing to w.
func newPrettyHandler(w io.Writer, verbose bool) *prettyHandler {
	return &prettyHandler{mu: &sync.Mutex{}, w: w, verbose: verbose}
}

// Reports whether records at level are written.
func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= logLevel.Level()
}

// Formats and writes a single record.
func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	buf.WriteString(levelColor(r.Level))
	fmt.Fprintf(&buf, "%-5s", r.Level.String())
	buf.WriteString(ansiReset)
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		buf.WriteByte(' ')
		buf.WriteString(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, h.prefix, a)
		return true
	})

	if h.verbose && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		fmt.Fprintf(&buf, " %s%s:%d%s", ansiGray, frame.File, frame.Line, ansiReset)
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

// Returns a handler that includes attrs in every record.
func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var buf bytes.Buffer
	for _, a := range attrs {
		appendAttr(&buf, h.prefix, a)
	}

	h2 := *h
	h2.attrs = slices.Clone(h.attrs)
	if s := strings.TrimSpace(buf.String()); s != "" {
		h2.attrs = append(h2.attrs, s)
	}
	return &h2
}

// Returns a handler that prefixes subsequent attribute keys with name.
func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

// Writes " key=value" for a, flattening groups.
func appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(buf, prefix, ga)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(ansiGray)
	buf.WriteString(prefix + a.Key)
	buf.WriteString("=")
	buf.WriteString(ansiReset)
	buf.WriteString(quoteValue(a.Value.String()))
}

// Quotes values that would be ambiguous on a key=value line.
func quoteValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// Returns the color sequence for a level.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return ansiRed
	case level >= slog.LevelWarn:
		return ansiYellow
	case level >= slog.LevelInfo:
		return ansiCyan
	default:
		return ansiGray
	}
}
