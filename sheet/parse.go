// Package sheet implements parsing of restricted stylesheets into a
// simple document tree, along with attribute resolution and rendering
// of the tree back to canonical source text.
package sheet

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"sheetc/token"
)

// A Parser parses stylesheet source into a Sheet. The zero value is
// usable; use NewParser to attach a logger.
type Parser struct {
	log *zap.Logger

	// Diag receives a human-readable diagnostic for every parse
	// failure. Defaults to os.Stderr.
	Diag io.Writer
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("sheet-parser")}
}

// Parse parses src into a Sheet. On failure it returns a *ParseError
// locating the first offending byte and writes a caret diagnostic to
// p.Diag.
func (p *Parser) Parse(src []byte) (*Sheet, error) {
	if p.log == nil {
		p.log = zap.NewNop()
	}
	p.log.Debug("Parsing stylesheet", zap.Int("bytes", len(src)))

	s := token.NewScanner(src)
	sheet := new(Sheet)
	for {
		s.SkipSpace()
		if s.AtEnd() {
			break
		}
		blk, err := p.parseBlock(s)
		if err != nil {
			return nil, p.fail(src, err)
		}
		sheet.Blocks = append(sheet.Blocks, blk)
	}
	p.log.Debug("Parsed stylesheet", zap.Int("blocks", len(sheet.Blocks)))
	return sheet, nil
}

func (p *Parser) parseBlock(s *token.Scanner) (Block, error) {
	sel, err := s.ScanIdent()
	if err != nil {
		return Block{}, err
	}
	blk := Block{Selector: Normalize(sel)}

	s.SkipSpace()
	if err := s.Expect('{'); err != nil {
		return Block{}, err
	}
	for {
		s.SkipSpace()
		if s.AtEnd() || s.Peek() == '}' {
			break
		}
		attr, err := p.parseAttr(s)
		if err != nil {
			return Block{}, err
		}
		blk.Attrs = append(blk.Attrs, attr)
	}
	if err := s.Expect('}'); err != nil {
		return Block{}, err
	}
	p.log.Debug("Parsed block", zap.String("selector", blk.Selector), zap.Int("attrs", len(blk.Attrs)))
	return blk, nil
}

func (p *Parser) parseAttr(s *token.Scanner) (Attribute, error) {
	nameOff := s.Pos()
	raw, err := s.ScanIdent()
	if err != nil {
		return Attribute{}, err
	}
	name := Normalize(raw)

	s.SkipSpace()
	if err := s.Expect(':'); err != nil {
		return Attribute{}, err
	}
	s.SkipSpace()
	val, err := s.ScanIdent()
	if err != nil {
		return Attribute{}, err
	}
	s.SkipSpace()
	if err := s.Expect(';'); err != nil {
		return Attribute{}, err
	}

	attr := Resolve(name, Normalize(val))
	if attr.Kind == Unknown {
		return Attribute{}, &token.ScanError{
			Offset: nameOff,
			Err:    fmt.Errorf("%w: %s", ErrUnknownAttribute, raw),
		}
	}
	return attr, nil
}

// fail converts a scanner-level error into a *ParseError, emits the
// diagnostic, and logs the failure.
func (p *Parser) fail(src []byte, err error) error {
	offset := len(src)
	if se, ok := err.(*token.ScanError); ok {
		offset = se.Offset
		err = se.Err
	}
	pe := errorAt(src, offset, err)

	w := p.Diag
	if w == nil {
		w = os.Stderr
	}
	io.WriteString(w, pe.Diagnostic())

	p.log.Error("Parse failed",
		zap.Int("offset", pe.Offset),
		zap.Int("line", pe.Line),
		zap.Int("col", pe.Column),
		zap.Error(pe.Err))
	return pe
}
