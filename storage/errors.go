package storage

import (
	"errors"
	"fmt"
)

// ErrMissingField is wrapped by validation errors returned from Load
var ErrMissingField = errors.New("missing required field")

// InvalidPathError is returned by New when the path doesn't end with PathSuffix
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("storage file should end with '%s', got '%s'", PathSuffix, e.Path)
}

// Op identifies the stage of Save / Load that failed
type Op string

const (
	OpEncode   Op = "encode"
	OpWrite    Op = "write"
	OpRead     Op = "read"
	OpParse    Op = "parse"
	OpValidate Op = "validate"
)

var opMessages = map[Op]string{
	OpEncode:   "error converting address book into storage format for",
	OpWrite:    "error writing to file",
	OpRead:     "error reading file",
	OpParse:    "error parsing file data format of",
	OpValidate: "file data missing some elements in",
}

// OperationError is returned by Save and Load for any failure other than
// a missing storage file
type OperationError struct {
	Op   Op
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	msg, ok := opMessages[e.Op]
	if !ok {
		msg = string(e.Op)
	}
	return fmt.Sprintf("%s '%s': %s", msg, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func opError(op Op, path string, err error) error {
	return &OperationError{Op: op, Path: path, Err: err}
}
