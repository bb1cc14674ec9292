package storage

import (
	"bytes"

	"github.com/kjk/policerecords/person"
	"github.com/kjk/policerecords/u"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff between the storage file and what Save(book)
// would write. A missing file diffs as empty. Returns "" if Save wouldn't
// change anything.
func (f *File) Diff(book *person.AddressBook) (string, error) {
	next, err := encodeDocument(book)
	if err != nil {
		return "", opError(OpEncode, f.path, err)
	}
	curr, err := u.ReadFileMaybe(f.path)
	if err != nil {
		return "", opError(OpRead, f.path, err)
	}
	curr = u.NormalizeNewlines(curr)
	if bytes.Equal(curr, next) {
		return "", nil
	}
	diff := difflib.UnifiedDiff{
		A:        splitLines(curr),
		B:        splitLines(next),
		FromFile: f.path,
		ToFile:   f.path + " (unsaved)",
		Context:  3,
	}
	s, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", opError(OpEncode, f.path, err)
	}
	return s, nil
}

func splitLines(d []byte) []string {
	if len(d) == 0 {
		return nil
	}
	return difflib.SplitLines(string(d))
}
