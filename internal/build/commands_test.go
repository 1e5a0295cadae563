package build

import (
	"errors"
	"strings"
	"testing"

	"github.com/containerd/errdefs"
)

func artifactsNamed(names ...string) []Artifact {
	out := make([]Artifact, 0, len(names))
	for _, n := range names {
		out = append(out, Artifact{Name: n})
	}
	return out
}

func TestVerifyCommands(t *testing.T) {
	tests := []struct {
		name      string
		artifacts []Artifact
		commands  []string
		missing   []string
	}{
		{
			name:      "all present",
			artifacts: artifactsNamed(DefaultCommands...),
			commands:  DefaultCommands,
		},
		{
			name:      "exe suffix accepted",
			artifacts: artifactsNamed("oiiotool.exe", "iinfo.exe"),
			commands:  []string{"oiiotool", "iinfo"},
		},
		{
			name:      "extra artifacts ignored",
			artifacts: artifactsNamed("oiiotool", "libOpenImageIO.so"),
			commands:  []string{"oiiotool"},
		},
		{
			name:      "no commands required",
			artifacts: nil,
			commands:  nil,
		},
		{
			name:      "missing reported together",
			artifacts: artifactsNamed("oiiotool"),
			commands:  []string{"oiiotool", "maketx", "idiff"},
			missing:   []string{"maketx", "idiff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyCommands(tt.artifacts, tt.commands)
			if len(tt.missing) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrMissingCommand) || !errdefs.IsNotFound(err) {
				t.Fatalf("err = %v, want ErrMissingCommand", err)
			}
			for _, m := range tt.missing {
				if !strings.Contains(err.Error(), m) {
					t.Fatalf("err = %q, missing %q", err, m)
				}
			}
		})
	}
}
