package atomicfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file '%s' doesn't exist, os.Stat() failed with '%s'", path, err)
	}
	if !st.Mode().IsRegular() {
		t.Fatalf("path '%s' exists but is not a file (mode: %d)", path, int(st.Mode()))
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("file '%s' exists, expected to not exist", path)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("error: %s", err)
	}
}

func assertFileContent(t *testing.T, path string, exp string) {
	t.Helper()
	d, err := os.ReadFile(path)
	assertNoError(t, err)
	if string(d) != exp {
		t.Fatalf("path: '%s', expected content: '%s', got: '%s'", path, exp, string(d))
	}
}

func assertOnlyFile(t *testing.T, dir string, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	assertNoError(t, err)
	if len(entries) != 1 || entries[0].Name() != name {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only '%s' in '%s', got %v", name, dir, names)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "records.txt")

	f, err := New(dst)
	assertNoError(t, err)
	assertFileExists(t, f.TempPath())
	assertFileNotExists(t, dst)
	_, err = f.WriteString("foo")
	assertNoError(t, err)
	_, err = f.Write([]byte("bar"))
	assertNoError(t, err)
	assertFileNotExists(t, dst)
	assertNoError(t, f.Close())
	assertFileNotExists(t, f.TempPath())
	assertFileContent(t, dst, "foobar")
	// calling Close twice is a no-op
	assertNoError(t, f.Close())

	st, err := os.Stat(dst)
	assertNoError(t, err)
	if st.Mode().Perm() != DefaultPerm {
		t.Fatalf("expected perm %v, got %v", DefaultPerm, st.Mode().Perm())
	}
}

func TestWriteFileReplaces(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "records.txt")
	assertNoError(t, WriteFile(dst, []byte("first")))
	assertNoError(t, WriteFile(dst, []byte("second")))
	assertFileContent(t, dst, "second")
	assertOnlyFile(t, dir, "records.txt")
}

func TestSimulateError(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "records.txt")
	assertNoError(t, WriteFile(dst, []byte("old")))

	f, err := New(dst)
	assertNoError(t, err)
	_, err = f.Write([]byte("new, half"))
	assertNoError(t, err)
	errSimulated := errors.New("simulated")
	f.err = errSimulated
	if err = f.Close(); err != errSimulated {
		t.Fatalf("expected %v, got %v", errSimulated, err)
	}
	// on second Close() should get the same error
	if err = f.Close(); err != errSimulated {
		t.Fatalf("expected %v, got %v", errSimulated, err)
	}
	assertFileContent(t, dst, "old")
	assertOnlyFile(t, dir, "records.txt")
}

func writeWithPanic(t *testing.T, f *File) {
	defer f.RemoveIfNotClosed()

	_, err := f.Write([]byte("foo"))
	assertNoError(t, err)
	panic("simulating a crash")
}

func TestRemoveIfNotClosedOnPanic(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "records.txt")
	f, err := New(dst)
	assertNoError(t, err)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected to panic")
			}
		}()
		writeWithPanic(t, f)
	}()

	assertFileNotExists(t, f.TempPath())
	assertFileNotExists(t, dst)
}

func TestCancelled(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "records.txt")
	f, err := New(dst)
	assertNoError(t, err)
	f.RemoveIfNotClosed()
	if _, err = f.Write([]byte("foo")); err != ErrCancelled {
		t.Fatalf("expected err to be %v, got %v", ErrCancelled, err)
	}
	if err = f.Close(); err != ErrCancelled {
		t.Fatalf("expected err to be %v, got %v", ErrCancelled, err)
	}
	assertFileNotExists(t, dst)
}

func TestMissingDir(t *testing.T) {
	// we can't create files in directories that don't exist
	// so we fail in New() and not after writing everything
	dst := filepath.Join(t.TempDir(), "foo", "bar.txt")
	f, err := New(dst)
	if err == nil {
		t.Fatalf("expected to get an error")
	}
	if f != nil {
		t.Fatalf("expected f to be nil, got %v", f)
	}
}

func TestRenameOverDirFails(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "records.txt")
	assertNoError(t, os.Mkdir(dst, 0755))
	if err := WriteFile(dst, []byte("foo")); err == nil {
		t.Fatalf("expected to get an error")
	}
	assertOnlyFile(t, dir, "records.txt")
}
