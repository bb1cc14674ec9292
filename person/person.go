package person

import (
	"fmt"
	"slices"
	"strings"
)

// Person is a single police record. NRIC is its identity.
type Person struct {
	Name        Name
	NRIC        NRIC
	DateOfBirth DateOfBirth
	PostalCode  PostalCode
	Status      Status
	WantedFor   Offense
	// sorted, no duplicates, nil if none
	PastOffenses []Offense
}

// New creates a person from already validated values
func New(name Name, nric NRIC, dob DateOfBirth, postal PostalCode, status Status, wantedFor Offense, pastOffenses ...Offense) *Person {
	return &Person{
		Name:         name,
		NRIC:         nric,
		DateOfBirth:  dob,
		PostalCode:   postal,
		Status:       status,
		WantedFor:    wantedFor,
		PastOffenses: normalizeOffenses(pastOffenses),
	}
}

func normalizeOffenses(a []Offense) []Offense {
	if len(a) == 0 {
		return nil
	}
	res := slices.Clone(a)
	slices.Sort(res)
	return slices.Compact(res)
}

// Fields are the raw string values of a person, before validation
type Fields struct {
	Name         string
	NRIC         string
	DateOfBirth  string
	PostalCode   string
	Status       string
	WantedFor    string
	PastOffenses []string
}

// Parse validates raw values and creates a person.
// Returns *IllegalValueError for the first value that is not valid.
func Parse(f Fields) (*Person, error) {
	name, err := NewName(f.Name)
	if err != nil {
		return nil, err
	}
	nric, err := NewNRIC(f.NRIC)
	if err != nil {
		return nil, err
	}
	dob, err := NewDateOfBirth(f.DateOfBirth)
	if err != nil {
		return nil, err
	}
	postal, err := NewPostalCode(f.PostalCode)
	if err != nil {
		return nil, err
	}
	status, err := NewStatus(f.Status)
	if err != nil {
		return nil, err
	}
	wantedFor, err := NewOffense(f.WantedFor)
	if err != nil {
		return nil, err
	}
	var past []Offense
	for _, s := range f.PastOffenses {
		o, err := NewOffense(s)
		if err != nil {
			return nil, err
		}
		past = append(past, o)
	}
	return New(name, nric, dob, postal, status, wantedFor, past...), nil
}

// ToFields is the inverse of Parse
func (p *Person) ToFields() Fields {
	f := Fields{
		Name:        string(p.Name),
		NRIC:        string(p.NRIC),
		DateOfBirth: string(p.DateOfBirth),
		PostalCode:  string(p.PostalCode),
		Status:      string(p.Status),
		WantedFor:   string(p.WantedFor),
	}
	for _, o := range p.PastOffenses {
		f.PastOffenses = append(f.PastOffenses, string(o))
	}
	return f
}

// IsSame returns true if both persons have the same identity
func (p *Person) IsSame(other *Person) bool {
	return other != nil && p.NRIC.Equal(other.NRIC)
}

// Equal returns true if all fields are equal
func (p *Person) Equal(other *Person) bool {
	if other == nil {
		return false
	}
	return p.Name == other.Name &&
		p.NRIC == other.NRIC &&
		p.DateOfBirth == other.DateOfBirth &&
		p.PostalCode == other.PostalCode &&
		p.Status == other.Status &&
		p.WantedFor == other.WantedFor &&
		slices.Equal(p.PastOffenses, other.PastOffenses)
}

// WithStatus returns a copy of p with status and wantedFor changed
func (p *Person) WithStatus(status Status, wantedFor Offense) *Person {
	return New(p.Name, p.NRIC, p.DateOfBirth, p.PostalCode, status, wantedFor, p.PastOffenses...)
}

func (p *Person) String() string {
	var past []string
	for _, o := range p.PastOffenses {
		past = append(past, string(o))
	}
	return fmt.Sprintf("%s NRIC: %s DateOfBirth: %s Postal Code: %s Status: %s Wanted For: %s Past Offenses: [%s]",
		p.Name, p.NRIC, p.DateOfBirth, p.PostalCode, p.Status, p.WantedFor, strings.Join(past, ", "))
}
