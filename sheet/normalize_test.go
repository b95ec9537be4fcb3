package sheet_test

import (
	"testing"

	"sheetc/sheet"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"color", "color"},
		{"font-family", "font_family"},
		{"font_family", "font-family"},
		{"dark-red", "dark_red"},
		{"a-b_c", "a_b-c"},
		{"--__", "__--"},
	}
	for _, tt := range tests {
		if got := sheet.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeInvolution(t *testing.T) {
	for _, s := range []string{"", "color", "font-family", "background_color", "a-b_c-d"} {
		if got := sheet.Normalize(sheet.Normalize(s)); got != s {
			t.Errorf("Normalize(Normalize(%q)) = %q; want the input back", s, got)
		}
	}
}
