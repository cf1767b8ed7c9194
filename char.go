package dictomaton

import "unicode/utf16"

// Char is a single transition label: one UTF-16 code unit. Strings are
// encoded to a []Char before being walked by the builder or the packed
// dictionary, so a surrogate pair becomes two transitions, matching the
// reference implementation's 16-bit alphabet.
type Char uint16

func encodeString(s string) []Char {
	units := utf16.Encode([]rune(s))
	chars := make([]Char, len(units))
	for i, u := range units {
		chars[i] = Char(u)
	}
	return chars
}

func decodeChars(chars []Char) string {
	units := make([]uint16, len(chars))
	for i, c := range chars {
		units[i] = uint16(c)
	}
	return string(utf16.Decode(units))
}

// compareChars compares two strings as sequences of UTF-16 code units,
// returning <0, 0, >0 the way strings.Compare does.
func compareChars(a, b []Char) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
