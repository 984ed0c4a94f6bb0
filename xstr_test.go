package xstr

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ io.WriterTo  = (*String)(nil)
	_ fmt.Stringer = (*String)(nil)
)

// =============================================================================
// Zero Value and Accessor Tests
// =============================================================================

func TestString_ZeroValue(t *testing.T) {
	var s String

	assert.Equal(t, 0, s.Len(), "zero value should be empty")
	assert.Equal(t, InlineCapacity, s.Cap())
	assert.Equal(t, KindInline, s.Kind())
	assert.False(t, s.IsHeap())
	assert.Equal(t, "", s.String())
	assert.Empty(t, s.Bytes())
	checkInvariants(t, &s)
}

func TestString_Accessors_Inline(t *testing.T) {
	s, err := New("foobarbar")
	require.NoError(t, err)

	assert.Equal(t, 9, s.Len())
	assert.Equal(t, InlineCapacity, s.Cap())
	assert.Equal(t, KindInline, s.Kind())
	assert.False(t, s.IsHeap())
	assert.Equal(t, "foobarbar", s.String())
	assert.Equal(t, []byte("foobarbar"), s.Bytes())
	checkInvariants(t, &s)
}

func TestString_Accessors_Heap(t *testing.T) {
	content := strings.Repeat("ab", 10)
	s, err := New(content)
	require.NoError(t, err)

	assert.Equal(t, 20, s.Len())
	assert.Equal(t, 31, s.Cap(), "20 bytes should land in the 1<<5 class")
	assert.Equal(t, KindHeap, s.Kind())
	assert.True(t, s.IsHeap())
	assert.Equal(t, content, s.String())
	checkInvariants(t, &s)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Inline", KindInline.String())
	assert.Equal(t, "Heap", KindHeap.String())
	assert.Equal(t, "Unknown", Kind(9).String())
}

func TestString_Bytes_AliasesStorage(t *testing.T) {
	s, err := New("mutable")
	require.NoError(t, err)

	view := s.Bytes()
	view[0] = 'M'

	assert.Equal(t, "Mutable", s.String(), "Bytes should expose the live storage")
}

func TestString_Bytes_CapacityClamped(t *testing.T) {
	s, err := New("abc")
	require.NoError(t, err)

	view := s.Bytes()
	require.Equal(t, len(view), cap(view), "view capacity should be clamped to the length")

	// Appending must reallocate instead of touching the terminator.
	grown := append(view, 'Z')
	assert.Equal(t, "abc", s.String())
	assert.Equal(t, []byte("abcZ"), grown)
	checkInvariants(t, &s)
}

// =============================================================================
// Comparison Tests
// =============================================================================

func TestString_Equal(t *testing.T) {
	small, err := New("foobarbar")
	require.NoError(t, err)

	big, err := New("foobarbar")
	require.NoError(t, err)
	require.NoError(t, big.Grow(100))

	other, err := New("foobarbaz")
	require.NoError(t, err)

	assert.True(t, small.Equal(&big), "layout must not affect equality")
	assert.True(t, big.Equal(&small))
	assert.False(t, small.Equal(&other))

	var empty String
	assert.True(t, empty.Equal(nil), "nil compares as empty")
	assert.False(t, small.Equal(nil))
}

func TestString_EqualString(t *testing.T) {
	s, err := New("foobarbar")
	require.NoError(t, err)

	assert.True(t, s.EqualString("foobarbar"))
	assert.False(t, s.EqualString("foobar"))
	assert.False(t, s.EqualString("foobarbarbar"))

	var empty String
	assert.True(t, empty.EqualString(""))
}

func TestString_Compare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal", "abc", "abc", 0},
		{"less", "abc", "abd", -1},
		{"greater", "abd", "abc", 1},
		{"prefix is less", "ab", "abc", -1},
		{"empty vs content", "", "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.a)
			require.NoError(t, err)
			b, err := New(tt.b)
			require.NoError(t, err)

			assert.Equal(t, tt.want, a.Compare(&b))
			assert.Equal(t, -tt.want, b.Compare(&a))
		})
	}

	s, err := New("a")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Compare(nil), "nil compares as empty")

	var empty String
	assert.Equal(t, 0, empty.Compare(nil))
}

// =============================================================================
// WriteTo Tests
// =============================================================================

func TestString_WriteTo(t *testing.T) {
	s, err := New("((((((foobarbar))))))")
	require.NoError(t, err)

	var sink bytes.Buffer
	n, err := s.WriteTo(&sink)

	require.NoError(t, err)
	assert.Equal(t, int64(21), n)
	assert.Equal(t, "((((((foobarbar))))))", sink.String())
}

func TestString_WriteTo_Empty(t *testing.T) {
	var s String

	var sink bytes.Buffer
	n, err := s.WriteTo(&sink)

	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestString_WriteTo_ErrorPropagation(t *testing.T) {
	s, err := New("payload")
	require.NoError(t, err)

	n, err := s.WriteTo(&errorWriter{err: io.ErrShortWrite})

	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(0), n)
}

// =============================================================================
// Helper Types and Functions
// =============================================================================

// checkInvariants verifies the structural invariants every String must
// uphold after any operation.
func checkInvariants(t *testing.T, s *String) {
	t.Helper()

	require.GreaterOrEqual(t, s.size, 0)
	require.LessOrEqual(t, s.size, s.Cap(), "content must fit the capacity")
	require.Equal(t, byte(0), s.storage()[s.size], "storage must stay terminated at Len()")

	switch s.kind {
	case KindInline:
		require.Nil(t, s.buf, "inline strings must not hold a heap buffer")
		require.Equal(t, InlineCapacity, s.Cap())
	case KindHeap:
		require.NotNil(t, s.buf)
		require.Equal(t, 1<<s.exp, len(s.buf), "heap buffer must be exactly 1<<exp bytes")
		require.GreaterOrEqual(t, int(s.exp), 5, "heap exponent must be at least the smallest heap class")
		require.LessOrEqual(t, int(s.exp), 54)
	default:
		t.Fatalf("unknown kind %d", s.kind)
	}
}

// errorWriter always fails with the configured error.
type errorWriter struct {
	err error
}

func (ew *errorWriter) Write(p []byte) (int, error) {
	return 0, ew.err
}
