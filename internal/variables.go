package internal

import (
	"log/slog"
	"runtime"
	"runtime/debug"
	"strings"
)

// Program name, used for the CLI and log groups.
const Name = "oiiobuild"

// Label printed in place of a version for builds without linker flags.
const localBuild = "(local)"

// Set with -ldflags "-X github.com/cruciblehq/oiiobuild/internal.<name>=...".
var (
	version   = "" // Release version, with or without a "v" prefix.
	stage     = "" // Git branch the release was cut from.
	gitCommit = "" // Git commit hash.

	rawQuiet   = "false"
	rawDebug   = "false"
	rawVerbose = "false"
)

// Identifies the running binary.
type BuildInfo struct {
	Version  string // Release version without prefix, empty for local builds.
	Stage    string // Release branch, empty when cut from main.
	Commit   string // Commit hash, from linker flags or the embedded VCS stamp.
	Dirty    bool   // Built from a modified checkout (local builds only).
	Platform string // GOOS/GOARCH; staged executables only run here.
}

// Returns the build information of the running binary.
//
// Pipeline builds set version, stage and commit through linker flags. When
// any of them is missing the build is local, and the commit comes from the
// VCS stamp the go command embeds in the binary, if any.
func Info() BuildInfo {
	info := BuildInfo{Platform: runtime.GOOS + "/" + runtime.GOARCH}

	v := strings.TrimSpace(version)
	s := strings.ToLower(strings.TrimSpace(stage))
	c := strings.TrimSpace(gitCommit)

	if v != "" && s != "" && c != "" {
		info.Version = strings.TrimPrefix(strings.ToLower(v), "v")
		info.Commit = c
		if s != "main" {
			info.Stage = s
		}
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, kv := range bi.Settings {
			switch kv.Key {
			case "vcs.revision":
				info.Commit = kv.Value
			case "vcs.modified":
				info.Dirty = kv.Value == "true"
			}
		}
	}
	return info
}

// Whether the binary was built without release linker flags.
func (b BuildInfo) Local() bool {
	return b.Version == ""
}

// Formats the build as "<version>[+<stage>] <commit> [<os>/<arch>]".
//
// Local builds print "(local)" in place of the version, followed by the
// embedded commit when known.
func (b BuildInfo) String() string {
	var sb strings.Builder

	if b.Local() {
		sb.WriteString(localBuild)
	} else {
		sb.WriteString(b.Version)
		if b.Stage != "" {
			sb.WriteString("+" + b.Stage)
		}
	}

	if b.Commit != "" {
		sb.WriteString(" " + b.Commit)
		if b.Dirty {
			sb.WriteString("-dirty")
		}
	}

	sb.WriteString(" [" + b.Platform + "]")
	return sb.String()
}

// Implements [slog.LogValuer].
func (b BuildInfo) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("platform", b.Platform)}
	if b.Local() {
		attrs = append(attrs, slog.Bool("local", true))
	} else {
		attrs = append(attrs, slog.String("version", b.Version))
	}
	if b.Stage != "" {
		attrs = append(attrs, slog.String("stage", b.Stage))
	}
	if b.Commit != "" {
		attrs = append(attrs, slog.String("commit", b.Commit), slog.Bool("dirty", b.Dirty))
	}
	return slog.GroupValue(attrs...)
}
