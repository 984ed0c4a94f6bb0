// Package hash provides content digests used for string identity.
package hash

import "github.com/cespare/xxhash/v2"

// Content computes the xxHash64 digest of raw content bytes.
func Content(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ContentString computes the xxHash64 digest of a Go string without
// copying it to a byte slice.
func ContentString(data string) uint64 {
	return xxhash.Sum64String(data)
}
