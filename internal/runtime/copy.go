package runtime

import (
	_ "crypto/sha256" // Registers the hash behind digest.Canonical.
	"fmt"
	"io"
	"os"

	"github.com/cruciblehq/oiiobuild/internal/paths"
	"github.com/opencontainers/go-digest"
)

// Creates a directory on the host, including parents.
func (rt *Runtime) MkdirAll(path string) error {
	if err := os.MkdirAll(path, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	return nil
}

// Lists the entry names of a directory on the host.
//
// The returned error wraps the underlying [os.ReadDir] error, so a missing
// directory still matches [os.ErrNotExist].
func (rt *Runtime) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Copies a single file, overwriting the destination.
//
// Copying a file onto itself (same path, or an alias through a symlink or
// bind mount) fails before dst is truncated. Permission bits of src are applied to dst, including when dst already
// existed with a different mode. The digest is computed over the bytes
// written.
func (rt *Runtime) CopyFile(src, dst string) (digest.Digest, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCopy, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCopy, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrCopy, src)
	}

	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return "", fmt.Errorf("%w: %s and %s are the same file", ErrCopy, src, dst)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCopy, err)
	}

	digester := digest.Canonical.Digester()
	if _, err := io.Copy(io.MultiWriter(out, digester.Hash()), in); err != nil {
		out.Close()
		return "", fmt.Errorf("%w: %s: %w", ErrCopy, dst, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCopy, dst, err)
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCopy, err)
	}

	return digester.Digest(), nil
}
