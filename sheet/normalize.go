package sheet

// Normalize returns s with every hyphen replaced by an underscore and
// every underscore by a hyphen. The substitution is its own inverse:
// Normalize(Normalize(s)) == s.
//
// The parser applies it uniformly to every identifier it scans
// (selectors, property names, and property values alike), so hyphenated
// source spellings (font-size) match the underscore-spelled kind names
// (font_size). Values go through the same substitution on purpose, not
// just names; the renderers reapply it on output, so a value written
// dark-blue is stored as dark_blue and comes back out as dark-blue.
func Normalize(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		switch c {
		case '-':
			b[i] = '_'
			changed = true
		case '_':
			b[i] = '-'
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
