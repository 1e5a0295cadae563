package runtime

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/opencontainers/go-digest"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatal(err)
	}
}

func TestMkdirAllIdempotent(t *testing.T) {
	rt := New(nil, nil)
	dir := filepath.Join(t.TempDir(), "a", "b")

	for i := 0; i < 2; i++ {
		if err := rt.MkdirAll(dir); err != nil {
			t.Fatalf("MkdirAll #%d: %v", i+1, err)
		}
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestReadDir(t *testing.T) {
	rt := New(nil, nil)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b"), "", 0644)
	writeFile(t, filepath.Join(dir, "a"), "", 0644)

	names, err := rt.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	slices.Sort(names)
	if !slices.Equal(names, []string{"a", "b"}) {
		t.Fatalf("names = %v, want [a b]", names)
	}
}

func TestReadDirMissing(t *testing.T) {
	rt := New(nil, nil)
	_, err := rt.ReadDir(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
	if !errors.Is(err, ErrRuntime) {
		t.Fatalf("err = %v, want ErrRuntime", err)
	}
}

func TestCopyFile(t *testing.T) {
	rt := New(nil, nil)
	dir := t.TempDir()
	src := filepath.Join(dir, "maketx")
	dst := filepath.Join(dir, "copy")
	writeFile(t, src, "binary", 0755)

	d, err := rt.CopyFile(src, dst)
	if err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	if d != digest.FromString("binary") {
		t.Fatalf("digest = %s, want %s", d, digest.FromString("binary"))
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "binary" {
		t.Fatalf("content = %q, want binary", got)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Fatalf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestCopyFileOverwrites(t *testing.T) {
	rt := New(nil, nil)
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, dst, "stale content that is longer", 0644)
	writeFile(t, src, "fresh", 0755)

	if _, err := rt.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fresh" {
		t.Fatalf("content = %q, want fresh", got)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Fatalf("mode = %v, want 0755 after overwrite", info.Mode().Perm())
	}
}

func TestCopyFileErrors(t *testing.T) {
	rt := New(nil, nil)
	dir := t.TempDir()

	if _, err := rt.CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dst")); !errors.Is(err, ErrCopy) {
		t.Fatalf("missing source: err = %v, want ErrCopy", err)
	}

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := rt.CopyFile(sub, filepath.Join(dir, "dst")); !errors.Is(err, ErrCopy) {
		t.Fatalf("directory source: err = %v, want ErrCopy", err)
	}

	src := filepath.Join(dir, "src")
	writeFile(t, src, "x", 0644)
	if _, err := rt.CopyFile(src, filepath.Join(dir, "nope", "dst")); !errors.Is(err, ErrCopy) {
		t.Fatalf("missing destination dir: err = %v, want ErrCopy", err)
	}
}

func TestCopyFileSameFile(t *testing.T) {
	rt := New(nil, nil)
	dir := t.TempDir()
	src := filepath.Join(dir, "oiiotool")
	writeFile(t, src, "binary-content", 0755)

	alias := filepath.Join(t.TempDir(), "alias")
	if err := os.Symlink(dir, alias); err != nil {
		t.Fatal(err)
	}

	for _, dst := range []string{src, filepath.Join(alias, "oiiotool")} {
		if _, err := rt.CopyFile(src, dst); !errors.Is(err, ErrCopy) {
			t.Fatalf("CopyFile(%s, %s): err = %v, want ErrCopy", src, dst, err)
		}

		got, err := os.ReadFile(src)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "binary-content" {
			t.Fatalf("source content = %q after copy onto itself, want binary-content", got)
		}
	}
}
