package xstr

// CopyFrom replaces the content with a copy of src's content, growing
// the receiver's storage when needed. The receiver keeps its own
// storage: no buffer is ever shared with src, so both values remain
// independently releasable.
//
// Copying from nil or from the receiver itself is a no-op.
func (s *String) CopyFrom(src *String) error {
	if src == nil || src == s {
		return nil
	}

	if err := s.Grow(src.size); err != nil {
		return err
	}

	data := s.storage()
	copy(data, src.storage()[:src.size])
	data[src.size] = 0
	s.size = src.size

	return nil
}

// MoveFrom transfers src's storage to the receiver without copying.
// The receiver's previous storage is released; src is reset to the
// empty inline state and remains usable.
//
// Moving from nil or from the receiver itself is a no-op.
func (s *String) MoveFrom(src *String) {
	if src == nil || src == s {
		return
	}

	s.Release()
	*s = *src
	*src = String{}
}

// Clone returns an independent deep copy of the String.
func (s *String) Clone() (String, error) {
	var out String
	if err := out.CopyFrom(s); err != nil {
		return String{}, err
	}

	return out, nil
}
