package webrenk

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Conversions between the name, hex, integer rgb() and percentage rgb()
// representations. Every function normalizes its input first; none of
// them catches or masks a failure from the normalizer or table lookup it
// composes.

// NameToHex converts a color name to a normalized hexadecimal value
// using the given specification's name list. The zero Specification
// selects CSS3. Names are matched case-insensitively.
func NameToHex(name string, spec Specification) (string, error) {
	spec = spec.orDefault()
	table, err := namesToHex(spec)
	if err != nil {
		return "", err
	}
	hexValue, ok := table[strings.ToLower(name)]
	if !ok {
		return "", colorErrorf(UnknownColorName, "%q is not defined as a named color in %s", name, spec)
	}
	return hexValue, nil
}

// NameToRGB converts a color name to an integer rgb() triplet.
func NameToRGB(name string, spec Specification) (IntegerRGB, error) {
	hexValue, err := NameToHex(name, spec)
	if err != nil {
		return IntegerRGB{}, err
	}
	return HexToRGB(hexValue)
}

// NameToRGBPercent converts a color name to a percentage rgb() triplet.
func NameToRGBPercent(name string, spec Specification) (PercentRGB, error) {
	rgb, err := NameToRGB(name, spec)
	if err != nil {
		return PercentRGB{}, err
	}
	return RGBToRGBPercent(rgb), nil
}

// HexToName converts a hexadecimal color value to the canonical color
// name it has in the given specification, if any. The zero Specification
// selects CSS3.
func HexToName(hexValue string, spec Specification) (string, error) {
	spec = spec.orDefault()
	table, err := hexToNames(spec)
	if err != nil {
		return "", err
	}
	normalized, err := NormalizeHex(hexValue)
	if err != nil {
		return "", err
	}
	name, ok := table[normalized]
	if !ok {
		return "", colorErrorf(UnknownColorValue, "%q has no defined color name in %s", hexValue, spec)
	}
	return name, nil
}

// HexToRGB converts a hexadecimal color value to an integer rgb()
// triplet: the six digits read as one 24-bit number whose high, middle
// and low bytes are red, green and blue.
func HexToRGB(hexValue string) (IntegerRGB, error) {
	normalized, err := NormalizeHex(hexValue)
	if err != nil {
		return IntegerRGB{}, err
	}
	v, err := strconv.ParseUint(normalized[1:], 16, 32)
	if err != nil {
		return IntegerRGB{}, colorErrorf(MalformedHexValue, "%q is not a valid hexadecimal color value", hexValue)
	}
	return IntegerRGB{
		R: int(v >> 16),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// HexToRGBPercent converts a hexadecimal color value to a percentage
// rgb() triplet.
func HexToRGBPercent(hexValue string) (PercentRGB, error) {
	rgb, err := HexToRGB(hexValue)
	if err != nil {
		return PercentRGB{}, err
	}
	return RGBToRGBPercent(rgb), nil
}

// RGBToName converts an integer rgb() triplet to the canonical color
// name it has in the given specification, if any.
func RGBToName(rgb IntegerRGB, spec Specification) (string, error) {
	return HexToName(RGBToHex(rgb), spec)
}

// RGBToHex converts an integer rgb() triplet to a normalized hexadecimal
// value. Components are clamped first, so this never fails.
func RGBToHex(rgb IntegerRGB) string {
	rgb = NormalizeIntegerTriplet(rgb)
	return "#" + hexByte(uint8(rgb.R)) + hexByte(uint8(rgb.G)) + hexByte(uint8(rgb.B))
}

// rgbPercentSpecials pins exact percentage strings for the component
// values whose generic float conversion would lose exactness. This is a
// compatibility requirement: 128 must always read back as "50%", never
// "50.20%".
var rgbPercentSpecials = map[int]string{
	255: "100%",
	128: "50%",
	64:  "25%",
	32:  "12.5%",
	16:  "6.25%",
	0:   "0%",
}

// RGBToRGBPercent converts an integer rgb() triplet to a percentage
// rgb() triplet. Components are clamped first, so this never fails.
// Values outside rgbPercentSpecials are formatted to two decimal places
// and may lose precision.
func RGBToRGBPercent(rgb IntegerRGB) PercentRGB {
	rgb = NormalizeIntegerTriplet(rgb)
	return PercentRGB{
		R: percentString(rgb.R),
		G: percentString(rgb.G),
		B: percentString(rgb.B),
	}
}

func percentString(value int) string {
	if s, ok := rgbPercentSpecials[value]; ok {
		return s
	}
	return fmt.Sprintf("%.02f%%", float64(value)/255*100)
}

// RGBPercentToName converts a percentage rgb() triplet to the canonical
// color name it has in the given specification, if any.
func RGBPercentToName(rgb PercentRGB, spec Specification) (string, error) {
	integer, err := RGBPercentToRGB(rgb)
	if err != nil {
		return "", err
	}
	return RGBToName(integer, spec)
}

// RGBPercentToHex converts a percentage rgb() triplet to a normalized
// hexadecimal value.
func RGBPercentToHex(rgb PercentRGB) (string, error) {
	integer, err := RGBPercentToRGB(rgb)
	if err != nil {
		return "", err
	}
	return RGBToHex(integer), nil
}

// RGBPercentToRGB converts a percentage rgb() triplet to an integer
// rgb() triplet, rounding half away from zero. Some precision may be
// lost; see RGBToRGBPercent.
func RGBPercentToRGB(rgb PercentRGB) (IntegerRGB, error) {
	normalized, err := NormalizePercentTriplet(rgb)
	if err != nil {
		return IntegerRGB{}, err
	}
	return IntegerRGB{
		R: percentToInteger(normalized.R),
		G: percentToInteger(normalized.G),
		B: percentToInteger(normalized.B),
	}, nil
}

func percentToInteger(percent string) int {
	value, _ := strconv.ParseFloat(strings.TrimSuffix(percent, "%"), 64)
	return clampComponent(int(math.Round(value / 100 * 255)))
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0xf]})
}
