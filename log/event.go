package log

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/toon-format/toon-go"
)

var hdrPrefix = []byte("--- ")

// simpleTypeToStr converts simple types to string
// panics if v is of complex type
func simpleTypeToStr(v any) string {
	rt := reflect.TypeOf(v)
	kind := rt.Kind()
	switch kind {
	case reflect.Array, reflect.Slice, reflect.Struct, reflect.Map, reflect.Chan, reflect.Interface, reflect.Pointer:
		panic(fmt.Sprintf("toStr: value is of kind %v", kind))
	case reflect.String:
		return v.(string)
	}
	return fmt.Sprintf("%v", v)
}

// marshalEvent frames toon-encoded data d as:
// "--- ${len} ${unix_ms} ${name}\n${d}\n"
func marshalEvent(name string, t time.Time, d []byte) []byte {
	var b bytes.Buffer
	b.Grow(len(hdrPrefix) + len(name) + len(d) + 32)
	b.Write(hdrPrefix)
	b.WriteString(strconv.Itoa(len(d)))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(t.UnixMilli(), 10))
	if name != "" {
		b.WriteByte(' ')
		b.WriteString(name)
	}
	b.WriteByte('\n')
	if n := len(d); n > 0 {
		b.Write(d)
		if d[n-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	return b.Bytes()
}

// EventBytes encodes an event the way Event writes it
// vals are key/value pairs, keys must be simple types
func EventBytes(name string, t time.Time, vals ...any) ([]byte, error) {
	n := len(vals)
	if n%2 != 0 {
		return nil, fmt.Errorf("odd number of vals: %d", n)
	}
	var d []byte
	if n > 0 {
		m := map[string]any{}
		for i := 0; i < n; i += 2 {
			m[simpleTypeToStr(vals[i])] = vals[i+1]
		}
		var err error
		if d, err = toon.Marshal(m); err != nil {
			return nil, err
		}
	}
	return marshalEvent(name, t, d), nil
}

// Event logs an event to the events log
// it's a no-op if Init() wasn't called with a Dir
func Event(name string, vals ...any) {
	if eventsLog == nil {
		return
	}
	d, err := EventBytes(name, time.Now().UTC(), vals...)
	if err != nil {
		Errorf("log.Event('%s'): %s", name, err)
		return
	}
	eventsLog.Write(d)
}
