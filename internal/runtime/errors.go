package runtime

import "errors"

var (
	ErrRuntime = errors.New("runtime error")
	ErrCopy    = errors.New("copy failed")
)
