package runtime

import "sync"

// Keeps the last max bytes written to it.
//
// Safe for concurrent writers; exec copies stdout and stderr from separate
// goroutines.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

// Creates a new [tailBuffer] retaining at most max bytes.
func newTailBuffer(max int) *tailBuffer {
	return &tailBuffer{max: max}
}

// Appends p, discarding the oldest bytes beyond the limit. Never fails.
func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(p)
	if n >= t.max {
		t.buf = append(t.buf[:0], p[n-t.max:]...)
		return n, nil
	}

	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = t.buf[over:]
	}
	return n, nil
}

// Returns the retained bytes.
func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}
