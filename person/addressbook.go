package person

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrDuplicatePerson = errors.New("person with this NRIC already exists")
	ErrPersonNotFound  = errors.New("person not found")
)

// AddressBook is an insertion-ordered collection of persons with unique NRICs.
// It's not safe for concurrent use.
type AddressBook struct {
	persons []*Person
}

// NewAddressBook creates a book with persons, in order.
// Fails with ErrDuplicatePerson if two persons share an NRIC.
func NewAddressBook(persons ...*Person) (*AddressBook, error) {
	b := &AddressBook{}
	for _, p := range persons {
		if err := b.Add(p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *AddressBook) indexOf(nric NRIC) int {
	return slices.IndexFunc(b.persons, func(p *Person) bool {
		return p.NRIC.Equal(nric)
	})
}

func (b *AddressBook) Len() int {
	if b == nil {
		return 0
	}
	return len(b.persons)
}

// Persons returns a copy of the list of persons, in insertion order.
// It's safe to call on nil receiver.
func (b *AddressBook) Persons() []*Person {
	if b == nil {
		return nil
	}
	return slices.Clone(b.persons)
}

func (b *AddressBook) Contains(nric NRIC) bool {
	return b.indexOf(nric) >= 0
}

func (b *AddressBook) Add(p *Person) error {
	if b.Contains(p.NRIC) {
		return fmt.Errorf("%w: %s", ErrDuplicatePerson, p.NRIC)
	}
	b.persons = append(b.persons, p)
	return nil
}

func (b *AddressBook) Get(nric NRIC) (*Person, error) {
	i := b.indexOf(nric)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPersonNotFound, nric)
	}
	return b.persons[i], nil
}

// Replace swaps the person with the same NRIC as p, keeping its position
func (b *AddressBook) Replace(p *Person) error {
	i := b.indexOf(p.NRIC)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, p.NRIC)
	}
	b.persons[i] = p
	return nil
}

func (b *AddressBook) Remove(nric NRIC) error {
	i := b.indexOf(nric)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, nric)
	}
	b.persons = slices.Delete(b.persons, i, i+1)
	return nil
}

func (b *AddressBook) Clear() {
	b.persons = nil
}

// Find returns persons whose name contains any of the keywords as a whole word,
// ignoring case
func (b *AddressBook) Find(keywords ...string) []*Person {
	var res []*Person
	for _, p := range b.persons {
		words := strings.Fields(strings.ToLower(string(p.Name)))
		for _, kw := range keywords {
			if slices.Contains(words, strings.ToLower(kw)) {
				res = append(res, p)
				break
			}
		}
	}
	return res
}
