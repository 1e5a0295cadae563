package build

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/cruciblehq/oiiobuild/internal/runtime"
	"github.com/opencontainers/go-digest"
)

// An executable copied into the commands directory.
type Artifact struct {
	Name   string        // File name, identical in source and target.
	Path   string        // Absolute or caller-relative target path.
	Digest digest.Digest // Digest of the copied content.
}

// Copies every entry of src into dst.
//
// src must exist; a missing install output means the install step did not
// produce what the package needs, and fails with [ErrMissingInstallOutput]
// before dst is touched. dst is created if absent. Entries keep their names
// and overwrite existing files. The first failing copy aborts staging.
func Stage(fsys runtime.Filesystem, src, dst string) ([]Artifact, error) {
	names, err := fsys.ReadDir(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInstallOutput, src)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingInstallOutput, src, err)
	}

	if err := fsys.MkdirAll(dst); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	artifacts := make([]Artifact, 0, len(names))
	for _, name := range names {
		source := filepath.Join(src, name)
		target := filepath.Join(dst, name)

		slog.Info("copying", "src", source, "dst", target)

		d, err := fsys.CopyFile(source, target)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCopy, name, err)
		}

		slog.Debug("staged", "name", name, "digest", d)
		artifacts = append(artifacts, Artifact{Name: name, Path: target, Digest: d})
	}

	return artifacts, nil
}
