package storage

import (
	"os"
	"strings"

	"github.com/kjk/policerecords/atomicfile"
	"github.com/kjk/policerecords/log"
	"github.com/kjk/policerecords/person"
	"github.com/kjk/policerecords/u"
)

const (
	// DefaultPath is used by NewDefault
	DefaultPath = "policeRecords.txt"
	// PathSuffix is required at the end of every storage path
	PathSuffix = ".txt"
)

// File stores an address book in a single file.
// It's not safe for concurrent use and assumes a single writer per path.
type File struct {
	path string
	// atomicfile.WriteFile, replaced in tests to simulate failures
	writeFile func(path string, d []byte) error
}

// New returns a storage bound to path. path must end with ".txt".
// The file doesn't have to exist.
func New(path string) (*File, error) {
	if !IsValidPath(path) {
		return nil, &InvalidPathError{Path: path}
	}
	return &File{
		path:      path,
		writeFile: atomicfile.WriteFile,
	}, nil
}

// NewDefault returns a storage bound to DefaultPath
func NewDefault() (*File, error) {
	return New(DefaultPath)
}

// IsValidPath returns true if path is acceptable as a storage file
func IsValidPath(path string) bool {
	return strings.HasSuffix(path, PathSuffix)
}

func (f *File) Path() string {
	return f.path
}

// Save over-writes the storage file with book. A nil book is saved as empty.
// On error the previous content of the file is left untouched.
func (f *File) Save(book *person.AddressBook) error {
	d, err := encodeDocument(book)
	if err != nil {
		return opError(OpEncode, f.path, err)
	}
	if err = f.writeFile(f.path, d); err != nil {
		return opError(OpWrite, f.path, err)
	}
	log.Verbosef("storage: saved %d persons to '%s'\n", book.Len(), f.path)
	return nil
}

// Load reads the address book from the storage file.
//
// If the file doesn't exist, it's created with DefaultAddressBook()
// which is then returned.
//
// Read, format and missing field errors are returned as *OperationError.
// Invalid field values are returned as *person.IllegalValueError.
func (f *File) Load() (*person.AddressBook, error) {
	exists, err := u.StatExists(f.path)
	if err != nil {
		return nil, opError(OpRead, f.path, err)
	}
	if !exists {
		return f.seed()
	}

	d, err := os.ReadFile(f.path)
	if err != nil {
		return nil, opError(OpRead, f.path, err)
	}
	records, err := parseDocument(d)
	if err != nil {
		return nil, opError(OpParse, f.path, err)
	}
	if err = checkRequiredFields(records); err != nil {
		return nil, opError(OpValidate, f.path, err)
	}
	book, err := decodeDocument(records)
	if err != nil {
		return nil, err
	}
	log.Verbosef("storage: loaded %d persons from '%s'\n", book.Len(), f.path)
	return book, nil
}

func (f *File) seed() (*person.AddressBook, error) {
	book := DefaultAddressBook()
	if err := f.Save(book); err != nil {
		return nil, err
	}
	log.Event("storage.seeded", "path", f.path, "persons", book.Len())
	return book, nil
}
