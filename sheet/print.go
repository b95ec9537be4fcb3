package sheet

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fprint writes sh to w in canonical source form: one block per
// selector, one tab-indented declaration per line. Selectors, names,
// and values go out through Normalize, so the output parses back to an
// equal tree.
func Fprint(w io.Writer, sh *Sheet) error {
	b := bufio.NewWriter(w)
	for _, blk := range sh.Blocks {
		b.WriteString(Normalize(blk.Selector))
		b.WriteString(" {\n")
		for _, a := range blk.Attrs {
			b.WriteByte('\t')
			b.WriteString(a.Name())
			b.WriteString(": ")
			b.WriteString(Normalize(a.Value))
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	return b.Flush()
}

// Fdump writes a line-oriented debug rendering of sh to w. Selectors
// and values are shown in their stored (normalized) form; property
// names come out hyphenated, the way they are spelled in source.
func Fdump(w io.Writer, sh *Sheet) error {
	b := bufio.NewWriter(w)
	for i, blk := range sh.Blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "block %d: %s\n", i, blk.Selector)
		for j, a := range blk.Attrs {
			fmt.Fprintf(b, "\t%d: %s = %s\n", j, a.Name(), a.Value)
		}
	}
	return b.Flush()
}

// String returns the canonical source form of sh.
func (sh *Sheet) String() string {
	var b strings.Builder
	Fprint(&b, sh)
	return b.String()
}
