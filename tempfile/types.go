package tempfile

import (
	"io"
)

// Writer defines the interface for writing a file that only becomes visible once complete.
// Data is written sequentially, then either Commit publishes it under its final name or
// Abort discards it. Exactly one of Commit or Abort should be called; later calls are no-ops
// returning ErrClosed.
type Writer interface {
	io.Writer
	io.StringWriter

	// Name returns the final name the data is published under.
	Name() string

	// Commit flushes all buffered data and atomically publishes it under Name.
	// On failure nothing is published and the partial data is discarded.
	Commit() error

	// Abort discards everything written so far. The final name is never touched.
	Abort() error
}
