package storage

import (
	"github.com/kjk/policerecords/person"
	"github.com/kjk/policerecords/u"
)

// DefaultAddressBook returns the two sample persons a new storage file
// starts with. Returns a new book on every call.
func DefaultAddressBook() *person.AddressBook {
	john := person.New("John Doe", "s1234567a", "1996", "510246", person.StatusExConvict, person.OffenseNone, "riot")
	jane := person.New("Jane Doe", "s9611234c", "1997", "510246", person.StatusExConvict, person.OffenseNone, "riot")
	book, err := person.NewAddressBook(john, jane)
	// NRICs are different so can't fail
	u.PanicIfErr(err)
	return book
}
