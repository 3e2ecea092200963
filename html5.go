package webrenk

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Literal translations of the HTML5 color algorithms.
// Reference: https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#colours
//
// These deliberately share no code with the rgb() conversions above: the
// standard defines them as self-contained procedures, and their steps
// must run in the specified order because the order decides the outcome
// on ambiguous input.

// ParseSimpleColor applies the HTML5 rules for parsing simple color
// values: the input must be exactly seven characters, "#" followed by
// six ASCII hex digits. Anything else fails with InvalidSimpleColor.
func ParseSimpleColor(input string) (SimpleColor, error) {
	// If input is not exactly seven characters long, return an error.
	if utf8.RuneCountInString(input) != 7 {
		return SimpleColor{}, colorErrorf(InvalidSimpleColor,
			"a simple color must be a string exactly seven characters long")
	}
	// If the first character is not "#" (U+0023), return an error.
	if input[0] != '#' {
		return SimpleColor{}, colorErrorf(InvalidSimpleColor,
			"a simple color must begin with the character '#' (U+0023)")
	}
	// If the last six characters are not all ASCII hex digits, return an
	// error. Only once this passes is the input known to be all ASCII,
	// making the byte slicing below safe.
	for _, r := range input[1:] {
		if !isASCIIHexDigit(r) {
			return SimpleColor{}, colorErrorf(InvalidSimpleColor,
				"a simple color must contain exactly six ASCII hex digits")
		}
	}
	// Interpret the three character pairs after the "#" as hexadecimal
	// red, green and blue components.
	r, _ := strconv.ParseUint(input[1:3], 16, 8)
	g, _ := strconv.ParseUint(input[3:5], 16, 8)
	b, _ := strconv.ParseUint(input[5:7], 16, 8)
	return SimpleColor{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// SerializeSimpleColor applies the HTML5 rules for serializing simple
// color values: "#" followed by the red, green and blue components as
// two-digit lowercase hexadecimal numbers. The result is always a valid
// lowercase simple color, so this cannot fail.
func SerializeSimpleColor(color SimpleColor) string {
	return "#" + hexByte(color.R) + hexByte(color.G) + hexByte(color.B)
}

// ParseLegacyColor applies the HTML5 rules for parsing a legacy color
// value: the tolerant, best-effort parser browsers use for malformed
// color strings. Only the empty string and "transparent" are rejected
// (with InvalidLegacyColor); every other input produces some SimpleColor.
func ParseLegacyColor(input string) (SimpleColor, error) {
	// Step 1: let input be the string being parsed. (The type system
	// covers the standard's non-text rejection.)
	//
	// Step 2: if input is the empty string, return an error.
	if input == "" {
		return SimpleColor{}, colorErrorf(InvalidLegacyColor,
			"legacy color parsing forbids the empty string as a value")
	}

	// Step 3: strip leading and trailing whitespace from input.
	input = strings.TrimSpace(input)

	// Step 4: if input is an ASCII case-insensitive match for the string
	// "transparent", return an error.
	if strings.EqualFold(input, "transparent") {
		return SimpleColor{}, colorErrorf(InvalidLegacyColor,
			`legacy color parsing forbids "transparent" as a value`)
	}

	// Step 5: if input matches one of the CSS3/SVG color keywords,
	// return the simple color for that keyword.
	if hexValue, ok := CSS3NamesToHex[strings.ToLower(input)]; ok {
		return ParseSimpleColor(hexValue)
	}

	// Step 6: if input is four characters long, starts with "#", and its
	// last three characters are ASCII hex digits, each digit scaled by
	// 17 gives the red, green and blue components.
	if len(input) == 4 && input[0] == '#' &&
		isASCIIHexDigit(rune(input[1])) &&
		isASCIIHexDigit(rune(input[2])) &&
		isASCIIHexDigit(rune(input[3])) {
		return SimpleColor{
			R: uint8(hexDigitValue(input[1]) * 17),
			G: uint8(hexDigitValue(input[2]) * 17),
			B: uint8(hexDigitValue(input[3]) * 17),
		}, nil
	}

	// Step 7: replace each code point greater than U+FFFF with the
	// two-character string "00". Ranging over the string iterates by
	// code point, which is what keeps this correct for astral-plane
	// characters.
	runes := make([]rune, 0, len(input))
	for _, r := range input {
		if r > 0xffff {
			runes = append(runes, '0', '0')
		} else {
			runes = append(runes, r)
		}
	}

	// Step 8: if input is longer than 128 characters, truncate it to the
	// first 128.
	if len(runes) > 128 {
		runes = runes[:128]
	}

	// Step 9: if the first character is "#", remove it.
	if len(runes) > 0 && runes[0] == '#' {
		runes = runes[1:]
	}

	// Step 10: replace every character that is not an ASCII hex digit
	// with "0" (U+0030). Everything is single-byte ASCII from here on.
	digits := make([]byte, len(runes))
	for i, r := range runes {
		if isASCIIHexDigit(r) {
			digits[i] = byte(r)
		} else {
			digits[i] = '0'
		}
	}

	// Step 11: append "0" characters until the length is nonzero and a
	// multiple of three.
	for len(digits) == 0 || len(digits)%3 != 0 {
		digits = append(digits, '0')
	}

	// Step 12: split input into three equal-length components. If their
	// length exceeds eight, keep only the last eight characters of each.
	// While the length exceeds two and all three components start with
	// "0", drop that zero from all three together. If the length still
	// exceeds two, truncate each component to its first two characters.
	// The final components read as hexadecimal red, green and blue.
	length := len(digits) / 3
	red, green, blue := digits[:length], digits[length:2*length], digits[2*length:]
	if length > 8 {
		red, green, blue = red[length-8:], green[length-8:], blue[length-8:]
		length = 8
	}
	for length > 2 && red[0] == '0' && green[0] == '0' && blue[0] == '0' {
		red, green, blue = red[1:], green[1:], blue[1:]
		length--
	}
	if length > 2 {
		red, green, blue = red[:2], green[:2], blue[:2]
	}
	r, _ := strconv.ParseUint(string(red), 16, 8)
	g, _ := strconv.ParseUint(string(green), 16, 8)
	b, _ := strconv.ParseUint(string(blue), 16, 8)
	return SimpleColor{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func isASCIIHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func hexDigitValue(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
