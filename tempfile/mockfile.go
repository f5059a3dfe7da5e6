package tempfile

import (
	"bytes"
)

// MockFileWriter provides an in-memory implementation of the Writer interface.
// It stores all data in a bytes.Buffer and publishes it to Committed on Commit.
// This is useful for testing without filesystem I/O.
type MockFileWriter struct {
	name      string
	data      *bytes.Buffer
	closed    bool
	aborted   bool
	committed []byte
	// CommitErr, when set, makes Commit fail and discard the data like a failed rename would.
	CommitErr error
}

// Mock creates a new in-memory Writer for name with the specified initial capacity.
func Mock(name string, n int) *MockFileWriter {
	return &MockFileWriter{name: name, data: bytes.NewBuffer(make([]byte, 0, n))}
}

// Name returns the name given to Mock.
func (w *MockFileWriter) Name() string {
	return w.name
}

func (w *MockFileWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	return w.data.Write(p)
}

func (w *MockFileWriter) WriteString(s string) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	return w.data.WriteString(s)
}

// Commit publishes the buffered data to Committed unless CommitErr is set.
func (w *MockFileWriter) Commit() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	if w.CommitErr != nil {
		w.aborted = true
		w.data = nil
		return w.CommitErr
	}
	w.committed = w.data.Bytes()
	w.data = nil
	return nil
}

// Abort discards the buffered data.
func (w *MockFileWriter) Abort() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	w.aborted = true
	w.data = nil
	return nil
}

// Committed returns the published data, nil until a successful Commit.
func (w *MockFileWriter) Committed() []byte {
	return w.committed
}

// Aborted reports whether the data was discarded.
func (w *MockFileWriter) Aborted() bool {
	return w.aborted
}
