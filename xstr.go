// Package xstr implements a compact string value type with two storage
// layouts behind one API: short content lives inline inside the value
// itself, while longer content moves to a pooled heap buffer whose
// capacity is always one below a power of two.
//
// A String tracks its length explicitly, so content may contain any
// byte values, including NUL. Storage additionally keeps a zero byte
// at position Len() for cheap handoff to APIs that expect terminated
// strings.
//
// String values are single-owner: copying a heap-backed value by plain
// assignment shares its buffer. Use Clone or CopyFrom to duplicate and
// MoveFrom to transfer ownership. No operation on a String is safe for
// concurrent use on the same value.
package xstr

import (
	"bytes"
	"io"
)

// Kind identifies the storage layout of a String.
type Kind uint8

const (
	// KindInline stores content directly inside the String value.
	KindInline Kind = iota
	// KindHeap stores content in a pooled heap buffer.
	KindHeap
)

// String returns the layout name.
func (k Kind) String() string {
	switch k {
	case KindInline:
		return "Inline"
	case KindHeap:
		return "Heap"
	default:
		return "Unknown"
	}
}

const (
	// InlineCapacity is the longest content an inline String can hold.
	InlineCapacity = 15

	// MaxLen is the longest content any String can hold. Lengths are
	// tracked in 54 bits.
	MaxLen = 1<<54 - 1
)

// String is a compact string value with small-content optimization.
//
// Content up to InlineCapacity bytes is stored inside the value
// itself; longer content is held in a heap buffer of exactly 1<<exp
// bytes, giving a usable capacity of 1<<exp - 1. Whatever the layout,
// the storage byte at position Len() is always zero.
//
// The zero value is an empty inline String, ready to use.
type String struct {
	// buf is the heap storage, exactly 1<<exp bytes (KindHeap only).
	buf []byte
	// size is the content length in bytes.
	size int
	// inline is the content plus terminator slot (KindInline only).
	inline [InlineCapacity + 1]byte
	// exp is the heap capacity exponent (KindHeap only).
	exp  uint8
	kind Kind
}

// Kind returns the current storage layout.
func (s *String) Kind() Kind {
	return s.kind
}

// IsHeap reports whether the content lives in a heap buffer.
func (s *String) IsHeap() bool {
	return s.kind == KindHeap
}

// Len returns the content length in bytes.
func (s *String) Len() int {
	return s.size
}

// Cap returns the longest content the current storage can hold without
// reallocating.
func (s *String) Cap() int {
	if s.kind == KindHeap {
		return 1<<s.exp - 1
	}

	return InlineCapacity
}

// storage returns the active backing array, including the terminator
// slot at index Len().
func (s *String) storage() []byte {
	if s.kind == KindHeap {
		return s.buf
	}

	return s.inline[:]
}

// Bytes returns the content as a byte slice without copying.
//
// The slice aliases the String's storage: it is invalidated by any
// mutating operation and must not be appended to.
func (s *String) Bytes() []byte {
	return s.storage()[:s.size:s.size]
}

// String returns the content as a plain Go string, copying it.
func (s *String) String() string {
	return string(s.storage()[:s.size])
}

// Equal reports whether s and other hold identical content.
// A nil other is treated as empty.
func (s *String) Equal(other *String) bool {
	if other == nil {
		return s.size == 0
	}

	return bytes.Equal(s.Bytes(), other.Bytes())
}

// EqualString reports whether the content equals str.
func (s *String) EqualString(str string) bool {
	return string(s.storage()[:s.size]) == str
}

// Compare performs a byte-wise comparison against other and returns
// -1, 0, or +1. A nil other is treated as empty.
func (s *String) Compare(other *String) int {
	if other == nil {
		return bytes.Compare(s.Bytes(), nil)
	}

	return bytes.Compare(s.Bytes(), other.Bytes())
}

// WriteTo writes the content to w, implementing io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}
