// Package errs defines the sentinel errors shared across xstr packages.
//
// Callers match them with errors.Is; operations wrap them with
// fmt.Errorf("%w: ...") when extra context is useful.
package errs

import "errors"

var (
	// ErrTooLarge indicates content or capacity beyond the maximum
	// length a String can represent.
	ErrTooLarge = errors.New("content too large")

	// ErrInvalidLength indicates a negative length or capacity argument.
	ErrInvalidLength = errors.New("invalid length")

	// ErrLiteralTooLong indicates a literal that does not fit in inline
	// storage.
	ErrLiteralTooLong = errors.New("literal too long")
)
