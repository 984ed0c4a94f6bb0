package xstr

import (
	"fmt"

	"github.com/arloliu/xstr/errs"
)

// Concat rebuilds the String as prefix, then the current content, then
// suffix. A nil prefix or suffix is treated as empty.
//
// When the combined length fits the current capacity, the bytes are
// rearranged in place without reallocating. Otherwise the result is
// assembled in grown storage and the old storage is released. Operands
// may alias the receiver; aliased operands always take the rebuild
// path so their content is read before the receiver changes.
func (s *String) Concat(prefix, suffix *String) error {
	var pre, suf []byte
	if prefix != nil {
		pre = prefix.Bytes()
	}
	if suffix != nil {
		suf = suffix.Bytes()
	}

	size := s.size
	total64 := int64(size) + int64(len(pre)) + int64(len(suf))
	if total64 > MaxLen {
		return fmt.Errorf("%w: result is %d bytes, limit is %d", errs.ErrTooLarge, total64, int64(MaxLen))
	}
	total := int(total64)

	if total <= s.Cap() && prefix != s && suffix != s {
		data := s.storage()
		copy(data[len(pre):], data[:size])
		copy(data, pre)
		copy(data[len(pre)+size:], suf)
		data[total] = 0
		s.size = total

		return nil
	}

	var tmp String
	if err := tmp.Grow(total); err != nil {
		return err
	}

	data := tmp.storage()
	copy(data[len(pre):], s.storage()[:size])
	copy(data, pre)
	copy(data[len(pre)+size:], suf)
	data[total] = 0
	tmp.size = total

	s.Release()
	*s = tmp

	return nil
}
