package u

import (
	"errors"
	"io/fs"
	"os"
)

// StatExists tells if path exists. It distinguishes "doesn't exist"
// (false, nil) from "can't tell" (false, err)
func StatExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadFileMaybe is like os.ReadFile but a missing file is not an error,
// it returns nil data
func ReadFileMaybe(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return d, err
}
