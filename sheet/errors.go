package sheet

import (
	"errors"
	"fmt"
	"strings"

	"sheetc/token"
)

// ErrUnknownAttribute reports a syntactically valid property name that
// matches no recognized attribute kind.
var ErrUnknownAttribute = errors.New("unknown attribute")

// The scanner-level failure kinds, re-exported so callers can match
// every parse failure against this package alone.
var (
	ErrInvalidIdent     = token.ErrInvalidIdent
	ErrUnexpectedSyntax = token.ErrUnexpectedSyntax
)

// A ParseError describes a single parse failure: the byte offset the
// failure was detected at and the position recomputed from it. Line is
// 1-based; Column is a 0-based index into SrcLine.
type ParseError struct {
	Offset  int
	Line    int
	Column  int
	SrcLine string // full text of the offending source line
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, col %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Diagnostic renders the failure for humans: position and cause, the
// offending source line, and a caret aligned under the column. Tabs in
// the source line are kept in the caret line so the alignment survives
// a terminal.
func (e *ParseError) Diagnostic() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d, col %d: %v\n", e.Line, e.Column, e.Err)
	b.WriteString(e.SrcLine)
	b.WriteByte('\n')
	for i := 0; i < e.Column && i < len(e.SrcLine); i++ {
		if e.SrcLine[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("^\n")
	return b.String()
}

// errorAt builds a ParseError for the failure err at the given byte
// offset, rescanning src from the start to recover the line number, the
// column, and the text of the offending line. Rescanning on failure is
// fine: a parse fails at most once.
func errorAt(src []byte, offset int, err error) *ParseError {
	if offset > len(src) {
		offset = len(src)
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(src)
	for i := offset; i < len(src); i++ {
		if src[i] == '\n' {
			lineEnd = i
			break
		}
	}
	return &ParseError{
		Offset:  offset,
		Line:    line,
		Column:  offset - lineStart,
		SrcLine: string(src[lineStart:lineEnd]),
		Err:     err,
	}
}
