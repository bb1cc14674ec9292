package person

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kjk/policerecords/u"
)

// IllegalValueError signals that a value doesn't meet the constraints of its field
type IllegalValueError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *IllegalValueError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Constraint)
}

func illegal(field, value, constraint string) error {
	return &IllegalValueError{Field: field, Value: value, Constraint: constraint}
}

var (
	rxName    = regexp.MustCompile(`^[\p{L} .'-]+$`)
	rxNRIC    = regexp.MustCompile(`^[STFGstfg][0-9]{7}[A-Za-z]$`)
	rxYear    = regexp.MustCompile(`^[0-9]{4}$`)
	rxPostal  = regexp.MustCompile(`^[0-9]{6}$`)
	rxOffense = regexp.MustCompile(`^[a-z]+( [a-z]+)*$`)
)

const minBirthYear = 1900

type Name string

func NewName(s string) (Name, error) {
	s = u.CollapseSpaces(s)
	if s == "" || !rxName.MatchString(s) {
		return "", illegal("name", s, "should only contain letters, spaces and .'-")
	}
	return Name(s), nil
}

// NRIC is the identity field, unique within an AddressBook
type NRIC string

func NewNRIC(s string) (NRIC, error) {
	s = strings.TrimSpace(s)
	if !rxNRIC.MatchString(s) {
		return "", illegal("nric", s, "should be a letter (S, T, F or G), 7 digits and a letter")
	}
	return NRIC(s), nil
}

// Equal compares NRICs ignoring case
func (n NRIC) Equal(other NRIC) bool {
	return strings.EqualFold(string(n), string(other))
}

// DateOfBirth is a year of birth
type DateOfBirth string

func NewDateOfBirth(s string) (DateOfBirth, error) {
	s = strings.TrimSpace(s)
	if !rxYear.MatchString(s) {
		return "", illegal("date of birth", s, "should be a 4 digit year")
	}
	year, _ := strconv.Atoi(s)
	if year < minBirthYear || year > time.Now().Year() {
		return "", illegal("date of birth", s, fmt.Sprintf("should be between %d and the current year", minBirthYear))
	}
	return DateOfBirth(s), nil
}

type PostalCode string

func NewPostalCode(s string) (PostalCode, error) {
	s = strings.TrimSpace(s)
	if !rxPostal.MatchString(s) {
		return "", illegal("postal code", s, "should be 6 digits")
	}
	return PostalCode(s), nil
}

type Status string

const (
	StatusWanted    Status = "wanted"
	StatusExConvict Status = "xc"
	StatusClear     Status = "clear"
)

func NewStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusWanted, StatusExConvict, StatusClear:
		return st, nil
	}
	return "", illegal("status", s, "should be one of: wanted, xc, clear")
}

// Offense is a lowercase offense tag, e.g. "riot" or "fleeing suspect".
// OffenseNone means there's nothing to be wanted for.
type Offense string

const OffenseNone Offense = "none"

func NewOffense(s string) (Offense, error) {
	s = strings.ToLower(u.CollapseSpaces(s))
	if !rxOffense.MatchString(s) {
		return "", illegal("offense", s, "should only contain letters and spaces")
	}
	return Offense(s), nil
}
