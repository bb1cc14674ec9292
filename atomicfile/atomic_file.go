package atomicfile

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	// ErrCancelled is returned by calls made after RemoveIfNotClosed
	ErrCancelled = errors.New("cancelled")

	_ io.WriteCloser = &File{}
)

// DefaultPerm is the mode of the destination file after a successful Close
const DefaultPerm fs.FileMode = 0644

// File is a write handle whose contents only become visible at dstPath
// after a successful Close
type File struct {
	dstPath string
	dir     string
	perm    fs.FileMode
	tmp     *os.File
	tmpPath string
	// first error we saw, sticky
	err error
}

// New creates a temporary file in the directory of path.
// It fails early if that directory doesn't exist.
func New(path string) (*File, error) {
	return NewWithPerm(path, DefaultPerm)
}

// NewWithPerm is like New but the destination ends up with perm
func NewWithPerm(path string, perm fs.FileMode) (*File, error) {
	dir, name := filepath.Split(path)
	if name == "" {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &File{
		dstPath: path,
		dir:     dir,
		perm:    perm,
		tmp:     tmp,
		tmpPath: tmp.Name(),
	}, nil
}

// TempPath returns the path of the temporary file backing f
func (f *File) TempPath() string {
	return f.tmpPath
}

func (f *File) fail(err error) error {
	if err == nil {
		return nil
	}
	if f.err == nil {
		f.err = err
	}
	// removes the temporary file
	_ = f.Close()
	return err
}

// Write writes to the temporary file. After the first error all
// subsequent calls return that error.
func (f *File) Write(d []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmp.Write(d)
	return n, f.fail(err)
}

// WriteString is like Write
func (f *File) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

func (f *File) closed() bool {
	return f.tmp == nil
}

// RemoveIfNotClosed abandons the write: the temporary file is removed and
// the destination is not touched. Meant for defer so that an early return
// or a panic before Close doesn't leave a half-written file around.
// After Close it does nothing.
func (f *File) RemoveIfNotClosed() {
	if f == nil || f.closed() {
		return
	}
	f.err = ErrCancelled
	_ = f.Close()
}

// Close flushes the temporary file and renames it over the destination.
// Safe to call multiple times, always returns the first error.
func (f *File) Close() error {
	if f.closed() {
		return f.err
	}
	tmp := f.tmp
	f.tmp = nil

	// https://www.joeshaw.org/dont-defer-close-on-writable-files/
	errSync := tmp.Sync()
	errClose := tmp.Close()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(f.tmpPath)
		}
	}()

	if f.err != nil {
		return f.err
	}

	err := errSync
	if err == nil {
		err = errClose
	}
	if err == nil {
		err = os.Chmod(f.tmpPath, f.perm)
	}
	if err == nil {
		// over-writes dstPath if it exists
		err = os.Rename(f.tmpPath, f.dstPath)
		renamed = err == nil
	}
	if renamed {
		// nice to have, not must have
		if d, _ := os.Open(f.dir); d != nil {
			_ = d.Sync()
			_ = d.Close()
		}
	}
	f.err = err
	return err
}

// WriteFile atomically replaces the contents of path with data
func WriteFile(path string, data []byte) error {
	f, err := New(path)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()

	if _, err = f.Write(data); err != nil {
		return err
	}
	return f.Close()
}
