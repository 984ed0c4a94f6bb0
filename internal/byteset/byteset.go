// Package byteset provides constant-time membership tests over byte
// values.
package byteset

// Set is a 256-bit membership set over byte values.
// The zero value is the empty set.
type Set [4]uint64

// Make builds a Set containing every byte of chars.
// Duplicates are harmless and order does not matter.
func Make(chars string) Set {
	var s Set
	for i := 0; i < len(chars); i++ {
		s.Add(chars[i])
	}

	return s
}

// Add inserts b into the set.
func (s *Set) Add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

// Contains reports whether b is a member of the set.
func (s *Set) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}
