package xstr

import "github.com/arloliu/xstr/internal/hash"

// Hash returns the 64-bit xxHash digest of the content.
//
// Equal content hashes equally regardless of storage layout, so the
// digest can key maps and interning tables.
func (s *String) Hash() uint64 {
	return hash.Content(s.Bytes())
}
