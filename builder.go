package xstr

import (
	"fmt"

	"github.com/arloliu/xstr/errs"
	"github.com/arloliu/xstr/internal/options"
)

// BuilderOption configures a Builder at construction time.
type BuilderOption = options.Option[*Builder]

// WithInitialCapacity pre-allocates the Builder's scratch space for n
// content bytes. Negative n is rejected with errs.ErrInvalidLength.
func WithInitialCapacity(n int) BuilderOption {
	return options.New(func(b *Builder) error {
		if n < 0 {
			return fmt.Errorf("%w: negative builder capacity %d", errs.ErrInvalidLength, n)
		}
		b.data = make([]byte, 0, n)

		return nil
	})
}

// Builder assembles String content incrementally.
//
// It implements io.Writer, io.StringWriter, and io.ByteWriter. Finish
// materializes the accumulated bytes as a String and resets the
// Builder for reuse.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	data []byte
}

// NewBuilder creates a Builder, applying any options.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Len returns the number of content bytes accumulated so far.
func (b *Builder) Len() int {
	return len(b.data)
}

// Reset discards the accumulated content, keeping the scratch space.
func (b *Builder) Reset() {
	b.data = b.data[:0]
}

// Write appends p to the accumulated content.
func (b *Builder) Write(p []byte) (int, error) {
	if err := b.checkRoom(len(p)); err != nil {
		return 0, err
	}
	b.data = append(b.data, p...)

	return len(p), nil
}

// WriteString appends str to the accumulated content.
func (b *Builder) WriteString(str string) (int, error) {
	if err := b.checkRoom(len(str)); err != nil {
		return 0, err
	}
	b.data = append(b.data, str...)

	return len(str), nil
}

// WriteByte appends a single byte to the accumulated content.
func (b *Builder) WriteByte(c byte) error {
	if err := b.checkRoom(1); err != nil {
		return err
	}
	b.data = append(b.data, c)

	return nil
}

// checkRoom rejects writes that would push the content past MaxLen.
func (b *Builder) checkRoom(n int) error {
	if int64(len(b.data))+int64(n) > MaxLen {
		return fmt.Errorf("%w: builder content would exceed %d bytes", errs.ErrTooLarge, int64(MaxLen))
	}

	return nil
}

// Finish materializes the accumulated content as a String and resets
// the Builder for reuse.
func (b *Builder) Finish() (String, error) {
	s, err := NewBytes(b.data)
	if err != nil {
		return String{}, err
	}
	b.Reset()

	return s, nil
}
