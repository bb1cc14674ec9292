package u

import "strings"

// NormalizeNewlines changes CRLF (Windows) and CR (Mac) to LF (Unix).
// Returns a copy, d is not modified.
func NormalizeNewlines(d []byte) []byte {
	res := make([]byte, 0, len(d))
	n := len(d)
	for i := 0; i < n; i++ {
		c := d[i]
		if c != '\r' {
			res = append(res, c)
			continue
		}
		res = append(res, '\n')
		if i < n-1 && d[i+1] == '\n' {
			// CRLF, skip the LF
			i++
		}
	}
	return res
}

// Capitalize does foo => Foo, BAR => Bar etc.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[0:1]) + s[1:]
}

// CollapseSpaces trims s and replaces runs of whitespace with a single space
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
