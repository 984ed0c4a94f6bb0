package xstr

import "github.com/arloliu/xstr/internal/byteset"

// Trim removes every leading and trailing byte that appears in cutset.
//
// cutset is a set of byte values, not a substring; it may contain any
// bytes, including NUL. An empty cutset leaves the String unchanged.
// Trimming shifts the content in place and never reallocates, so the
// capacity and layout are preserved.
func (s *String) Trim(cutset string) {
	if cutset == "" || s.size == 0 {
		return
	}

	set := byteset.Make(cutset)
	data := s.storage()
	n := s.size

	start := 0
	for start < n && set.Contains(data[start]) {
		start++
	}

	if start == n {
		// Every content byte is in cutset.
		s.size = 0
		if data[0] != 0 {
			data[0] = 0
		}

		return
	}

	end := n
	for end > start && set.Contains(data[end-1]) {
		end--
	}

	size := end - start
	copy(data, data[start:end])
	// do not dirty the terminator slot when it is already clean
	if data[size] != 0 {
		data[size] = 0
	}
	s.size = size
}
