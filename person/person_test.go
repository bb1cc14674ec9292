package person

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert"
)

func johnFields() Fields {
	return Fields{
		Name:         "John Doe",
		NRIC:         "s1234567a",
		DateOfBirth:  "1996",
		PostalCode:   "510246",
		Status:       "xc",
		WantedFor:    "none",
		PastOffenses: []string{"riot", "theft", "riot"},
	}
}

func TestParse(t *testing.T) {
	p, err := Parse(johnFields())
	assert.NoError(t, err)
	assert.Equal(t, Name("John Doe"), p.Name)
	assert.Equal(t, StatusExConvict, p.Status)
	assert.Equal(t, OffenseNone, p.WantedFor)
	assert.Equal(t, []Offense{"riot", "theft"}, p.PastOffenses)

	p2, err := Parse(p.ToFields())
	assert.NoError(t, err)
	assert.True(t, p.Equal(p2))
	assert.True(t, p.IsSame(p2))
}

func TestParseIllegalValues(t *testing.T) {
	tests := []struct {
		field  string
		modify func(f *Fields)
	}{
		{"name", func(f *Fields) { f.Name = "J0hn" }},
		{"nric", func(f *Fields) { f.NRIC = "x1234567a" }},
		{"nric", func(f *Fields) { f.NRIC = "s123456a" }},
		{"date of birth", func(f *Fields) { f.DateOfBirth = "96" }},
		{"date of birth", func(f *Fields) { f.DateOfBirth = "1850" }},
		{"postal code", func(f *Fields) { f.PostalCode = "51024" }},
		{"status", func(f *Fields) { f.Status = "free" }},
		{"offense", func(f *Fields) { f.WantedFor = "riot!" }},
		{"offense", func(f *Fields) { f.PastOffenses = []string{"ok", ""} }},
	}
	for _, test := range tests {
		f := johnFields()
		test.modify(&f)
		p, err := Parse(f)
		assert.Nil(t, p)
		var ive *IllegalValueError
		assert.True(t, errors.As(err, &ive), "%v", err)
		assert.Equal(t, test.field, ive.Field)
	}
}

func TestNormalization(t *testing.T) {
	o, err := NewOffense("  Fleeing   SUSPECT ")
	assert.NoError(t, err)
	assert.Equal(t, Offense("fleeing suspect"), o)
	st, err := NewStatus("WANTED")
	assert.NoError(t, err)
	assert.Equal(t, StatusWanted, st)
	n, err := NewName(" Mas   Selamat ")
	assert.NoError(t, err)
	assert.Equal(t, Name("Mas Selamat"), n)
	assert.True(t, NRIC("S1234567A").Equal("s1234567a"))
}

func mustParse(t *testing.T, name, nric string) *Person {
	f := johnFields()
	f.Name = name
	f.NRIC = nric
	p, err := Parse(f)
	assert.NoError(t, err)
	return p
}

func TestAddressBook(t *testing.T) {
	john := mustParse(t, "John Doe", "s1234567a")
	jane := mustParse(t, "Jane Doe", "s9611234c")
	b, err := NewAddressBook(john, jane)
	assert.NoError(t, err)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []*Person{john, jane}, b.Persons())

	// NRIC comparison ignores case
	err = b.Add(mustParse(t, "Other Doe", "S1234567A"))
	assert.True(t, errors.Is(err, ErrDuplicatePerson))

	_, err = NewAddressBook(john, john)
	assert.True(t, errors.Is(err, ErrDuplicatePerson))

	got, err := b.Get("s9611234c")
	assert.NoError(t, err)
	assert.Equal(t, jane, got)

	assert.Equal(t, []*Person{john, jane}, b.Find("doe"))
	assert.Equal(t, []*Person{jane}, b.Find("JANE", "nobody"))
	assert.Equal(t, 0, len(b.Find("do")))

	wanted := jane.WithStatus(StatusWanted, "riot")
	assert.NoError(t, b.Replace(wanted))
	assert.Equal(t, []*Person{john, wanted}, b.Persons())
	// the original is not modified
	assert.Equal(t, StatusExConvict, jane.Status)

	assert.NoError(t, b.Remove("s1234567a"))
	assert.True(t, errors.Is(b.Remove("s1234567a"), ErrPersonNotFound))
	_, err = b.Get("s1234567a")
	assert.True(t, errors.Is(err, ErrPersonNotFound))
	assert.Equal(t, 1, b.Len())

	b.Clear()
	assert.Equal(t, 0, b.Len())

	var nilBook *AddressBook
	assert.Equal(t, 0, nilBook.Len())
	assert.Nil(t, nilBook.Persons())
}
