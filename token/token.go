// Package token implements low-level scanning of stylesheet source text.
//
// A Scanner is a thin cursor over an in-memory byte buffer. It knows
// nothing about the stylesheet grammar; the sheet package drives it.
package token

import (
	"errors"
	"fmt"
)

// Scan failure kinds. Errors returned by a Scanner wrap one of these
// and can be matched with errors.Is.
var (
	ErrInvalidIdent     = errors.New("invalid identifier")
	ErrUnexpectedSyntax = errors.New("unexpected syntax")
)

// A ScanError records a failure and the byte offset it was detected at.
// Line and column are deliberately not tracked during scanning; the
// sheet package recomputes them from the offset when it renders a
// diagnostic.
type ScanError struct {
	Offset int
	Err    error
}

func (e *ScanError) Error() string { return fmt.Sprintf("offset %d: %v", e.Offset, e.Err) }

func (e *ScanError) Unwrap() error { return e.Err }

// A Scanner holds the source buffer and a single byte-offset cursor.
// The source is assumed to be UTF-8/ASCII text; every character the
// grammar cares about is a single byte.
type Scanner struct {
	src []byte
	pos int
}

func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int { return s.pos }

func (s *Scanner) AtEnd() bool { return s.pos >= len(s.src) }

// Peek returns the byte at the cursor, or 0 at end of input.
func (s *Scanner) Peek() byte {
	if s.AtEnd() {
		return 0
	}
	return s.src[s.pos]
}

// SkipSpace advances past any run of spaces, tabs, and newlines.
// It cannot fail.
func (s *Scanner) SkipSpace() {
	for !s.AtEnd() && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// ScanIdent consumes a maximal run of ASCII letters, digits, and
// hyphens. Consuming zero characters is an error.
func (s *Scanner) ScanIdent() (string, error) {
	start := s.pos
	for !s.AtEnd() && isIdent(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return "", &ScanError{
			Offset: start,
			Err:    fmt.Errorf("%w: expected letter, digit, or '-'", ErrInvalidIdent),
		}
	}
	return string(s.src[start:s.pos]), nil
}

// Expect consumes exactly ch, or fails naming the expected character.
func (s *Scanner) Expect(ch byte) error {
	if s.AtEnd() || s.src[s.pos] != ch {
		return &ScanError{
			Offset: s.pos,
			Err:    fmt.Errorf("%w: expected %q", ErrUnexpectedSyntax, ch),
		}
	}
	s.pos++
	return nil
}

func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\n' }

func isIdent(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '-'
}
