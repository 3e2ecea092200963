package webrenk

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSimpleColor(t *testing.T) {
	tests := []struct {
		in   string
		want SimpleColor
	}{
		{"#1a2b3c", SimpleColor{26, 43, 60}},
		{"#000000", SimpleColor{0, 0, 0}},
		{"#ffffff", SimpleColor{255, 255, 255}},
		{"#FFFFFF", SimpleColor{255, 255, 255}},
		{"#09afAF", SimpleColor{9, 175, 175}},
	}
	for _, tt := range tests {
		got, err := ParseSimpleColor(tt.in)
		if err != nil {
			t.Errorf("ParseSimpleColor(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseSimpleColor(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseSimpleColorErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"#",
		"1a2b3c",   // no #
		"#1a2b3",   // six characters
		"#1a2b3cd", // eight characters
		"#1a2b3g",  // g is not a hex digit
		"#1a2b3 ",  // trailing space
		" #1a2b3",  // # not first
		"#αβγδεζ",  // seven characters, none of them hex digits
	} {
		_, err := ParseSimpleColor(in)
		wantKind(t, err, InvalidSimpleColor)
	}
}

func TestSerializeSimpleColor(t *testing.T) {
	tests := []struct {
		in   SimpleColor
		want string
	}{
		{SimpleColor{26, 43, 60}, "#1a2b3c"},
		{SimpleColor{0, 0, 0}, "#000000"},
		{SimpleColor{255, 255, 255}, "#ffffff"},
		{SimpleColor{9, 175, 175}, "#09afaf"},
	}
	for _, tt := range tests {
		if got := SerializeSimpleColor(tt.in); got != tt.want {
			t.Errorf("SerializeSimpleColor(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimpleColorParseSerializeInverse(t *testing.T) {
	for _, in := range []string{"#1a2b3c", "#000000", "#ffffff", "#deadbe"} {
		color, err := ParseSimpleColor(in)
		if err != nil {
			t.Fatalf("ParseSimpleColor(%q): %v", in, err)
		}
		if got := SerializeSimpleColor(color); got != in {
			t.Errorf("serialize(parse(%q)) = %q", in, got)
		}
	}
}

func TestParseLegacyColorKeyword(t *testing.T) {
	// A CSS3 keyword short-circuits to its simple color.
	tests := []struct {
		in   string
		want SimpleColor
	}{
		{"kırmızısı", SimpleColor{255, 0, 0}},
		{"beyazı", SimpleColor{255, 255, 255}},
		{"Teal", SimpleColor{0, 128, 128}},
		{"  teal  ", SimpleColor{0, 128, 128}},
		{"devedikeni", SimpleColor{216, 191, 216}},
	}
	for _, tt := range tests {
		got, err := ParseLegacyColor(tt.in)
		if err != nil {
			t.Errorf("ParseLegacyColor(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseLegacyColor(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseLegacyColorShorthand(t *testing.T) {
	tests := []struct {
		in   string
		want SimpleColor
	}{
		{"#1af", SimpleColor{17, 170, 255}},
		{"#000", SimpleColor{0, 0, 0}},
		{"#fff", SimpleColor{255, 255, 255}},
		{"#ABC", SimpleColor{170, 187, 204}},
	}
	for _, tt := range tests {
		got, err := ParseLegacyColor(tt.in)
		if err != nil {
			t.Errorf("ParseLegacyColor(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseLegacyColor(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseLegacyColorErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"transparent",
		"TRANSPARENT",
		"Transparent",
		"  transparent  ",
	} {
		_, err := ParseLegacyColor(in)
		wantKind(t, err, InvalidLegacyColor)
	}
}

func TestParseLegacyColorTolerant(t *testing.T) {
	tests := []struct {
		in   string
		want SimpleColor
	}{
		// Non-hex characters become zeros, then the blocks split.
		{"chucknorris", SimpleColor{192, 0, 0}},
		{"red", SimpleColor{0, 14, 13}},
		// A plain six-digit value parses as expected.
		{"#abcdef", SimpleColor{171, 205, 239}},
		{"abcdef", SimpleColor{171, 205, 239}},
		// Whitespace-only input survives the empty-string check (which
		// happens before stripping) and zero-pads to black.
		{"   ", SimpleColor{0, 0, 0}},
		// Shared leading zeros are dropped from all three blocks together.
		{"00f00f00f", SimpleColor{15, 15, 15}},
		// Blocks longer than eight characters keep only their last eight.
		{strings.Repeat("f", 200), SimpleColor{255, 255, 255}},
		// Each code point above U+FFFF becomes the two characters "00".
		{"\U0001D11E", SimpleColor{0, 0, 0}},
		{"#1\U0001D11Ef", SimpleColor{16, 15, 0}},
	}
	for _, tt := range tests {
		got, err := ParseLegacyColor(tt.in)
		if err != nil {
			t.Errorf("ParseLegacyColor(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseLegacyColor(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
