// Package format glues the parser and the printers together for
// stream-oriented callers like the sheetc command.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"sheetc/sheet"
)

// Pipe reads stylesheet source from in, parses it, and writes the
// canonical rendering to out. The filename argument is used to set the
// “filename” in error messages. Parse diagnostics go to diag; pass nil
// to keep the default (stderr).
func Pipe(filename string, out io.Writer, in io.Reader, diag io.Writer, log *zap.Logger) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := formatSheet(filename, &b, src, diag, log); err != nil {
		return err
	}
	_, err = out.Write(b.Bytes())
	return err
}

// Check parses the source from in and writes the debug dump of the
// resulting tree to out. It formats nothing.
func Check(filename string, out io.Writer, in io.Reader, diag io.Writer, log *zap.Logger) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	sh, err := parseSheet(filename, src, diag, log)
	if err != nil {
		return err
	}
	return sheet.Fdump(out, sh)
}

func formatSheet(filename string, out io.Writer, src []byte, diag io.Writer, log *zap.Logger) error {
	sh, err := parseSheet(filename, src, diag, log)
	if err != nil {
		return err
	}
	return sheet.Fprint(out, sh)
}

func parseSheet(filename string, src []byte, diag io.Writer, log *zap.Logger) (*sheet.Sheet, error) {
	p := sheet.NewParser(log)
	p.Diag = diag
	sh, err := p.Parse(src)
	var pe *sheet.ParseError
	if errors.As(err, &pe) {
		return nil, fmt.Errorf("%s:%d:%d: %v", filename, pe.Line, pe.Column, pe.Err)
	} else if err != nil {
		return nil, err
	}
	return sh, nil
}
