// Package intern deduplicates string content so that equal values
// share one canonical Go string.
package intern

import (
	"fmt"
	"strings"
	"sync"

	"github.com/arloliu/xstr"
	"github.com/arloliu/xstr/errs"
	"github.com/arloliu/xstr/internal/hash"
	"github.com/arloliu/xstr/internal/options"
)

// DefaultMaxEntryLen is the content length limit above which content
// bypasses the table and is returned as a plain copy.
const DefaultMaxEntryLen = 64

// Option configures a Table at construction time.
type Option = options.Option[*Table]

// WithMaxEntryLen sets the longest content the table will intern.
// Content longer than n bypasses the table. Negative n is rejected
// with errs.ErrInvalidLength.
func WithMaxEntryLen(n int) Option {
	return options.New(func(t *Table) error {
		if n < 0 {
			return fmt.Errorf("%w: negative intern entry limit %d", errs.ErrInvalidLength, n)
		}
		t.maxLen = n

		return nil
	})
}

// Table deduplicates string content keyed by xxHash64 digest.
//
// Distinct contents with colliding digests are kept side by side in
// the same bucket and resolved by byte comparison, so a collision
// never returns the wrong canonical string.
//
// Table is safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	buckets map[uint64][]string
	count   int
	maxLen  int
}

// NewTable creates an empty Table, applying any options.
func NewTable(opts ...Option) (*Table, error) {
	t := &Table{
		buckets: make(map[uint64][]string),
		maxLen:  DefaultMaxEntryLen,
	}
	if err := options.Apply(t, opts...); err != nil {
		return nil, err
	}

	return t, nil
}

// Intern returns the canonical Go string for s's content.
// A nil s yields the empty string.
func (t *Table) Intern(s *xstr.String) string {
	if s == nil {
		return ""
	}

	return t.InternBytes(s.Bytes())
}

// InternBytes returns the canonical Go string for content.
func (t *Table) InternBytes(content []byte) string {
	if len(content) > t.maxLen {
		return string(content)
	}

	digest := hash.Content(content)

	t.mu.RLock()
	if canonical, ok := findBytes(t.buckets[digest], content); ok {
		t.mu.RUnlock()
		return canonical
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check: another goroutine may have interned it meanwhile.
	if canonical, ok := findBytes(t.buckets[digest], content); ok {
		return canonical
	}

	canonical := string(content)
	t.buckets[digest] = append(t.buckets[digest], canonical)
	t.count++

	return canonical
}

// InternString returns the canonical Go string for str.
func (t *Table) InternString(str string) string {
	if len(str) > t.maxLen {
		return str
	}

	digest := hash.ContentString(str)

	t.mu.RLock()
	if canonical, ok := findString(t.buckets[digest], str); ok {
		t.mu.RUnlock()
		return canonical
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	if canonical, ok := findString(t.buckets[digest], str); ok {
		return canonical
	}

	// Clone so the table never pins a larger backing array that str
	// may point into.
	canonical := strings.Clone(str)
	t.buckets[digest] = append(t.buckets[digest], canonical)
	t.count++

	return canonical
}

// Len returns the number of canonical strings held by the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.count
}

func findBytes(bucket []string, content []byte) (string, bool) {
	for _, s := range bucket {
		if string(content) == s {
			return s, true
		}
	}

	return "", false
}

func findString(bucket []string, str string) (string, bool) {
	for _, s := range bucket {
		if s == str {
			return s, true
		}
	}

	return "", false
}
