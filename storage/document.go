package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kjk/policerecords/person"
	"github.com/tidwall/pretty"
)

// The storage file is a JSON document:
//
//	{
//	  "persons": [
//	    {
//	      "dateOfBirth": "1996",
//	      "name": "John Doe",
//	      "nric": "s1234567a",
//	      "pastOffenses": ["riot"],
//	      "postalCode": "510246",
//	      "status": "xc",
//	      "wantedFor": "none"
//	    }
//	  ]
//	}
//
// Mapping between person.Person and the document is done by hand in
// encodeDocument / decodeDocument so that which fields are required is
// spelled out here and not hidden in struct tags.

const (
	keyPersons      = "persons"
	keyName         = "name"
	keyNRIC         = "nric"
	keyDateOfBirth  = "dateOfBirth"
	keyPostalCode   = "postalCode"
	keyStatus       = "status"
	keyWantedFor    = "wantedFor"
	keyPastOffenses = "pastOffenses"
)

// every record must have those present and non-empty
var requiredKeys = []string{
	keyName,
	keyNRIC,
	keyDateOfBirth,
	keyPostalCode,
	keyStatus,
	keyWantedFor,
}

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: true,
}

func encodePerson(p *person.Person) map[string]any {
	f := p.ToFields()
	past := f.PastOffenses
	if past == nil {
		past = []string{}
	}
	return map[string]any{
		keyName:         f.Name,
		keyNRIC:         f.NRIC,
		keyDateOfBirth:  f.DateOfBirth,
		keyPostalCode:   f.PostalCode,
		keyStatus:       f.Status,
		keyWantedFor:    f.WantedFor,
		keyPastOffenses: past,
	}
}

// encodeDocument returns the pretty-printed document for book.
// The same book always encodes to the same bytes.
func encodeDocument(book *person.AddressBook) ([]byte, error) {
	persons := []any{}
	for _, p := range book.Persons() {
		persons = append(persons, encodePerson(p))
	}
	doc := map[string]any{
		keyPersons: persons,
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	d = pretty.PrettyOptions(d, prettyOptions)
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	return d, nil
}

// record is one parsed person object. Values are not validated yet.
type record struct {
	fields       map[string]string
	pastOffenses []string
}

func stringValue(key string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		// null is the same as absent
		return "", nil
	case string:
		return s, nil
	}
	return "", fmt.Errorf("'%s' should be a string, got %T", key, v)
}

func parseRecord(i int, v any) (*record, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("person %d should be an object, got %T", i, v)
	}
	rec := &record{
		fields: map[string]string{},
	}
	for _, key := range requiredKeys {
		s, err := stringValue(key, obj[key])
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i, err)
		}
		rec.fields[key] = s
	}
	switch a := obj[keyPastOffenses].(type) {
	case nil:
	case []any:
		for _, el := range a {
			s, err := stringValue(keyPastOffenses, el)
			if err != nil {
				return nil, fmt.Errorf("person %d: %w", i, err)
			}
			rec.pastOffenses = append(rec.pastOffenses, s)
		}
	default:
		return nil, fmt.Errorf("person %d: '%s' should be an array, got %T", i, keyPastOffenses, a)
	}
	return rec, nil
}

// parseDocument checks the structure of the document. It doesn't check
// if required fields are present, that's checkRequiredFields.
func parseDocument(d []byte) ([]*record, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	var doc any
	if err := json.Unmarshal(d, &doc); err != nil {
		return nil, err
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("root should be an object, got %T", doc)
	}
	var res []*record
	switch persons := root[keyPersons].(type) {
	case nil:
		// no persons
	case []any:
		for i, v := range persons {
			rec, err := parseRecord(i, v)
			if err != nil {
				return nil, err
			}
			res = append(res, rec)
		}
	default:
		return nil, fmt.Errorf("'%s' should be an array, got %T", keyPersons, persons)
	}
	return res, nil
}

// checkRequiredFields returns an error wrapping ErrMissingField for the
// first record that lacks a required field
func checkRequiredFields(records []*record) error {
	for i, rec := range records {
		for _, key := range requiredKeys {
			if rec.fields[key] == "" {
				return fmt.Errorf("%w '%s' in person %d", ErrMissingField, key, i)
			}
		}
		for _, s := range rec.pastOffenses {
			if s == "" {
				return fmt.Errorf("%w: empty element of '%s' in person %d", ErrMissingField, keyPastOffenses, i)
			}
		}
	}
	return nil
}

// decodeDocument converts validated records to an address book.
// Errors from person (*person.IllegalValueError, person.ErrDuplicatePerson)
// are returned as is.
func decodeDocument(records []*record) (*person.AddressBook, error) {
	book := &person.AddressBook{}
	for _, rec := range records {
		p, err := person.Parse(person.Fields{
			Name:         rec.fields[keyName],
			NRIC:         rec.fields[keyNRIC],
			DateOfBirth:  rec.fields[keyDateOfBirth],
			PostalCode:   rec.fields[keyPostalCode],
			Status:       rec.fields[keyStatus],
			WantedFor:    rec.fields[keyWantedFor],
			PastOffenses: rec.pastOffenses,
		})
		if err != nil {
			return nil, err
		}
		if err = book.Add(p); err != nil {
			return nil, err
		}
	}
	return book, nil
}
