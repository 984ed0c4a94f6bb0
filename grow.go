package xstr

import (
	"fmt"

	"github.com/arloliu/xstr/errs"
	"github.com/arloliu/xstr/internal/pool"
)

// Grow ensures the String can hold at least n content bytes without
// further allocation. It never shrinks the capacity and never changes
// the content.
//
// Growing an inline String past InlineCapacity switches it to heap
// storage. The new capacity is the smallest 1<<k - 1 that covers n.
func (s *String) Grow(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidLength, n)
	}
	if int64(n) > MaxLen {
		return fmt.Errorf("%w: requested capacity %d, limit is %d", errs.ErrTooLarge, n, int64(MaxLen))
	}
	if n <= s.Cap() {
		return nil
	}

	exp := capExponent(n)
	buf := pool.GetBuffer(exp)
	copy(buf, s.storage()[:s.size])
	buf[s.size] = 0

	if s.kind == KindHeap {
		pool.PutBuffer(s.buf)
	}

	s.kind = KindHeap
	s.buf = buf
	s.exp = exp

	return nil
}

// Release returns any heap buffer to the shared pool and resets the
// String to the empty inline state.
//
// Release is optional: abandoned values are reclaimed by the garbage
// collector like any other Go memory. Releasing twice is harmless.
func (s *String) Release() {
	if s.kind == KindHeap {
		pool.PutBuffer(s.buf)
	}

	*s = String{}
}

// Reset clears the content while keeping the current storage, so
// following operations can reuse the capacity.
func (s *String) Reset() {
	s.size = 0
	s.storage()[0] = 0
}
