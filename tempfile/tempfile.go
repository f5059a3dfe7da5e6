// Package tempfile implements files that are written in full to a temporary file
// in the destination directory and then renamed into place, so readers never observe
// a partially written file and a failed write leaves any previous file untouched.
package tempfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// file IO buffer size for each file
	fileBufferSize = 1 << 16 // 64k
	// filename prefix for files put in the destination directory while being written
	tempFilenamePrefix = fmt.Sprintf(".sortbench_%d_", os.Getpid())
)

// ErrClosed is returned when writing to, committing or aborting a file that was already committed or aborted.
var ErrClosed = errors.New("tempfile: file already closed")

// AtomicFile is a Writer backed by a temporary file next to its destination.
type AtomicFile struct {
	file      *os.File
	bufWriter *bufio.Writer
	target    string
	perm      os.FileMode
}

// New creates the temporary file for target in target's directory.
// The directory must exist; target itself is not created until Commit.
func New(target string) (*AtomicFile, error) {
	var w AtomicFile
	var err error
	w.file, err = os.CreateTemp(filepath.Dir(target), tempFilenamePrefix)
	if err != nil {
		return nil, err
	}
	w.target = target
	w.perm = 0o644
	w.bufWriter = bufio.NewWriterSize(w.file, fileBufferSize)
	return &w, nil
}

// Name returns the destination path.
func (w *AtomicFile) Name() string {
	return w.target
}

// TempName returns the path of the temporary file holding the data until Commit.
func (w *AtomicFile) TempName() string {
	if w.file == nil {
		return ""
	}
	return w.file.Name()
}

func (w *AtomicFile) Write(p []byte) (nn int, err error) {
	if w.file == nil {
		return 0, ErrClosed
	}
	return w.bufWriter.Write(p)
}

func (w *AtomicFile) WriteString(s string) (int, error) {
	if w.file == nil {
		return 0, ErrClosed
	}
	return w.bufWriter.WriteString(s)
}

// Commit flushes, syncs and closes the temporary file, then renames it to the destination.
// If any step fails the temporary file is removed and the destination is left as it was.
func (w *AtomicFile) Commit() error {
	if w.file == nil {
		return ErrClosed
	}
	err := w.bufWriter.Flush()
	if err == nil {
		err = w.file.Chmod(w.perm)
	}
	if err == nil {
		err = w.file.Sync()
	}
	if err != nil {
		_ = w.Abort()
		return err
	}
	name := w.file.Name()
	err = w.file.Close()
	w.file = nil
	w.bufWriter = nil
	if err != nil {
		_ = os.Remove(name)
		return err
	}
	if err = os.Rename(name, w.target); err != nil {
		_ = os.Remove(name)
		return err
	}
	return nil
}

// Abort stops the file from accepting new data, closes it
// and removes the temporary file from disk. Works like an abort, unrecoverable.
func (w *AtomicFile) Abort() error {
	if w.file == nil {
		return ErrClosed
	}
	name := w.file.Name()
	err := w.file.Close()
	w.file = nil
	w.bufWriter = nil
	if rmErr := os.Remove(name); err == nil {
		err = rmErr
	}
	return err
}
