package xstr

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/xstr/errs"
	"github.com/arloliu/xstr/internal/pool"
)

// capExponent returns the smallest exponent k whose heap buffer of
// 1<<k bytes holds n content bytes plus the terminator, that is, the
// smallest k with 1<<k - 1 >= n.
func capExponent(n int) uint8 {
	return uint8(bits.Len64(uint64(n)))
}

// New builds a String holding the content of str.
//
// Content up to InlineCapacity bytes stays inline; longer content is
// copied to a heap buffer. Returns errs.ErrTooLarge when the content
// exceeds MaxLen.
func New(str string) (String, error) {
	return newFrom(str)
}

// NewBytes builds a String holding a copy of content.
// The String does not retain content; later changes to it are not
// observed.
func NewBytes(content []byte) (String, error) {
	return newFrom(content)
}

func newFrom[T ~string | ~[]byte](content T) (String, error) {
	n := len(content)
	if int64(n) > MaxLen {
		return String{}, fmt.Errorf("%w: content is %d bytes, limit is %d", errs.ErrTooLarge, n, int64(MaxLen))
	}

	var s String
	if n <= InlineCapacity {
		copy(s.inline[:], content)
		s.size = n

		return s, nil
	}

	s.kind = KindHeap
	s.exp = capExponent(n)
	s.buf = pool.GetBuffer(s.exp)
	copy(s.buf, content)
	s.buf[n] = 0
	s.size = n

	return s, nil
}

// Lit builds an inline String from a short literal.
//
// It panics with an error wrapping errs.ErrLiteralTooLong when str
// does not fit inline; use New for content of arbitrary length.
func Lit(str string) String {
	if len(str) > InlineCapacity {
		panic(fmt.Errorf("%w: %q is %d bytes, inline limit is %d", errs.ErrLiteralTooLong, str, len(str), InlineCapacity))
	}

	var s String
	copy(s.inline[:], str)
	s.size = len(str)

	return s
}
