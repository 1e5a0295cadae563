package build

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

var (
	ErrBuild               = errors.New("build failed")
	ErrFileSystemOperation = errors.New("file system operation failed")
	ErrCommandFailed       = errors.New("command failed")
	ErrCopy                = errors.New("copy failed")

	// Also matches [errdefs.ErrFailedPrecondition].
	ErrMissingInstallOutput = fmt.Errorf("install output missing: %w", errdefs.ErrFailedPrecondition)

	// Also matches [errdefs.ErrNotFound].
	ErrMissingCommand = fmt.Errorf("command not staged: %w", errdefs.ErrNotFound)
)
