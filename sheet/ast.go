package sheet

// Kind enumerates the recognized attribute kinds. The zero value is the
// Unknown sentinel; it never appears inside a parsed Sheet, since
// resolving to it is a hard parse failure.
//
// Kind names are spelled with underscores; Normalize turns them back
// into the hyphenated property names used in stylesheet text.
//
//go:generate go tool stringer -type Kind -linecomment
type Kind uint8

const (
	Unknown         Kind = iota // unknown
	Color                       // color
	Background                  // background
	BackgroundColor             // background_color
	TextAlign                   // text_align
	FontFamily                  // font_family
	FontSize                    // font_size
)

// kinds lists every recognized kind in resolution and rendering order.
// Both Resolve and the renderers consult this list; there is no
// reflection anywhere.
var kinds = [...]Kind{Color, Background, BackgroundColor, TextAlign, FontFamily, FontSize}

// Resolve maps a normalized attribute name onto a recognized kind,
// carrying value as its payload. Matching is exact and case sensitive;
// a name matching no kind yields the Unknown sentinel with no payload.
func Resolve(name, value string) Attribute {
	for _, k := range kinds {
		if name == k.String() {
			return Attribute{Kind: k, Value: value}
		}
	}
	return Attribute{Kind: Unknown}
}

// An Attribute is one recognized property of a block: a kind and the
// value text it carries. Kind is never Unknown inside a Sheet.
type Attribute struct {
	Kind  Kind
	Value string
}

// Name returns the textual property name of the attribute: the kind
// name with normalization reapplied (background_color becomes
// background-color).
func (a Attribute) Name() string { return Normalize(a.Kind.String()) }

// A Block is one selector { ... } unit. Attrs preserves source order.
type Block struct {
	Selector string
	Attrs    []Attribute
}

// A Sheet is the ordered sequence of blocks parsed from one document.
// It is immutable after Parse returns and owned by the caller; nothing
// in it references the Parser.
type Sheet struct {
	Blocks []Block
}
