package xstr

import (
	"iter"

	"github.com/arloliu/xstr/internal/byteset"
)

// Tokenizer splits a String into delimiter-separated tokens.
//
// Each call to Next consumes the leading delimiters and the returned
// token from the subject, so the subject shrinks as iteration
// advances. The cursor state lives in the Tokenizer itself; distinct
// Tokenizers over distinct subjects are independent.
type Tokenizer struct {
	subject *String
}

// NewTokenizer creates a Tokenizer reading from subject.
// The subject may be nil and supplied later via SetSubject.
func NewTokenizer(subject *String) *Tokenizer {
	return &Tokenizer{subject: subject}
}

// SetSubject replaces the subject the Tokenizer reads from.
func (t *Tokenizer) SetSubject(subject *String) {
	t.subject = subject
}

// Next returns the next token, treating every byte of delims as a
// delimiter. It reports false when the subject is nil or exhausted;
// a subject holding only delimiter bytes is consumed without yielding
// a token.
//
// The returned token is an independent String: releasing or mutating
// it does not affect the subject. With an empty delims the whole
// remaining content is returned as one token.
func (t *Tokenizer) Next(delims string) (String, bool) {
	sub := t.subject
	if sub == nil || sub.size == 0 {
		return String{}, false
	}

	set := byteset.Make(delims)
	data := sub.storage()
	n := sub.size

	start := 0
	for start < n && set.Contains(data[start]) {
		start++
	}

	if start == n {
		// Only delimiters remain; consume them and end the sequence.
		sub.size = 0
		if data[0] != 0 {
			data[0] = 0
		}

		return String{}, false
	}

	end := start
	for end < n && !set.Contains(data[end]) {
		end++
	}

	// The token never exceeds the subject length, so construction
	// cannot fail.
	token, _ := newFrom(data[start:end])

	// Consume the leading delimiters and the token. The delimiter that
	// ended the token stays as the new head and is skipped by the next
	// call.
	rest := n - end
	copy(data, data[end:n])
	if data[rest] != 0 {
		data[rest] = 0
	}
	sub.size = rest

	return token, true
}

// All returns an iterator over the remaining tokens.
//
// The iterator consumes the subject exactly like repeated Next calls
// and is not restartable.
//
// Example:
//
//	for token := range tok.All(",") {
//	    fmt.Println(token.String())
//	}
func (t *Tokenizer) All(delims string) iter.Seq[String] {
	return func(yield func(String) bool) {
		for {
			token, ok := t.Next(delims)
			if !ok {
				return
			}
			if !yield(token) {
				return
			}
		}
	}
}
