package runtime

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "plain arguments",
			cmd:  Command{Program: "cmake", Args: []string{"--build", ".", "--target", "install"}},
			want: "cmake --build . --target install",
		},
		{
			name: "empty value is quoted",
			cmd:  Command{Program: "cmake", Args: []string{"-DEXTRA_CPP_ARGS="}},
			want: "cmake -DEXTRA_CPP_ARGS=",
		},
		{
			name: "spaces are quoted",
			cmd:  Command{Program: "cmake", Args: []string{"-DEXTRA_CPP_ARGS=-O2 -g"}},
			want: "cmake '-DEXTRA_CPP_ARGS=-O2 -g'",
		},
		{
			name: "no arguments",
			cmd:  Command{Program: "cmake"},
			want: "cmake",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecSuccess(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	rt := New(&stdout, &stderr)

	result, err := rt.Exec(context.Background(), &Command{
		Program: "sh",
		Args:    []string{"-c", "echo hello; echo oops 1>&2"},
	})
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", result.ExitCode)
	}

	out := stdout.String()
	if !strings.HasPrefix(out, "sh -c ") {
		t.Fatalf("stdout %q does not start with the echoed command line", out)
	}
	if !strings.Contains(out, "hello\n") {
		t.Fatalf("stdout %q missing tool output", out)
	}
	if stderr.String() != "oops\n" {
		t.Fatalf("stderr = %q, want %q", stderr.String(), "oops\n")
	}
	if !strings.Contains(result.Output, "hello") || !strings.Contains(result.Output, "oops") {
		t.Fatalf("Output = %q, want both streams", result.Output)
	}
}

func TestExecNonZeroExit(t *testing.T) {
	requireShell(t)

	rt := New(nil, nil)
	result, err := rt.Exec(context.Background(), &Command{
		Program: "sh",
		Args:    []string{"-c", "echo failing 1>&2; exit 3"},
	})
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	if result.ExitCode != 3 {
		t.Fatalf("ExitCode = %d, want 3", result.ExitCode)
	}
	if !strings.Contains(result.Output, "failing") {
		t.Fatalf("Output = %q, want tool stderr", result.Output)
	}
}

func TestExecDirAndEnv(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	var stdout bytes.Buffer
	rt := New(&stdout, nil)

	env := []string{"OIIO_PROBE=found", "PATH=/usr/bin:/bin"}
	result, err := rt.Exec(context.Background(), &Command{
		Program: "sh",
		Args:    []string{"-c", "pwd; echo $OIIO_PROBE"},
		Dir:     dir,
		Env:     env,
	})
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}

	if !strings.Contains(result.Output, filepath.Base(dir)) {
		t.Fatalf("Output = %q, want working directory %q", result.Output, dir)
	}
	if !strings.Contains(result.Output, "found") {
		t.Fatalf("Output = %q, want environment value", result.Output)
	}
	if env[0] != "OIIO_PROBE=found" {
		t.Fatal("caller environment mutated")
	}
}

func TestExecMissingProgram(t *testing.T) {
	rt := New(nil, nil)
	_, err := rt.Exec(context.Background(), &Command{Program: "oiiobuild-no-such-program"})
	if !errors.Is(err, ErrRuntime) {
		t.Fatalf("err = %v, want ErrRuntime", err)
	}
}

func TestTailBuffer(t *testing.T) {
	tests := []struct {
		name   string
		max    int
		writes []string
		want   string
	}{
		{name: "under limit", max: 8, writes: []string{"abc", "de"}, want: "abcde"},
		{name: "trims oldest", max: 4, writes: []string{"abc", "def"}, want: "cdef"},
		{name: "single oversized write", max: 3, writes: []string{"abcdef"}, want: "def"},
		{name: "exact fit", max: 3, writes: []string{"abc"}, want: "abc"},
		{name: "nothing written", max: 3, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTailBuffer(tt.max)
			for _, w := range tt.writes {
				n, err := b.Write([]byte(w))
				if err != nil || n != len(w) {
					t.Fatalf("Write(%q) = %d, %v", w, n, err)
				}
			}
			if got := b.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
