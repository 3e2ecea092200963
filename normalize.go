package webrenk

import (
	"regexp"
	"strconv"
	"strings"
)

var hexColorRE = regexp.MustCompile(`^#([a-fA-F0-9]{3}|[a-fA-F0-9]{6})$`)

// NormalizeHex normalizes a hexadecimal color value to the "#rrggbb"
// form: six digits, lowercase. A three-digit value expands by doubling
// each digit, so "#abc" becomes "#aabbcc". Any other shape fails with
// MalformedHexValue.
func NormalizeHex(value string) (string, error) {
	match := hexColorRE.FindStringSubmatch(value)
	if match == nil {
		return "", colorErrorf(MalformedHexValue, "%q is not a valid hexadecimal color value", value)
	}
	digits := match[1]
	if len(digits) == 3 {
		var sb strings.Builder
		for i := 0; i < 3; i++ {
			sb.WriteByte(digits[i])
			sb.WriteByte(digits[i])
		}
		digits = sb.String()
	}
	return "#" + strings.ToLower(digits), nil
}

// NormalizeIntegerTriplet clamps each component of an integer rgb()
// triplet to 0-255. Out-of-range components are corrected silently, not
// reported: this matches the lenient parsing behavior the Web color
// formats require.
func NormalizeIntegerTriplet(rgb IntegerRGB) IntegerRGB {
	return IntegerRGB{
		R: clampComponent(rgb.R),
		G: clampComponent(rgb.G),
		B: clampComponent(rgb.B),
	}
}

func clampComponent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return value
}

// NormalizePercentTriplet clamps each component of a percentage rgb()
// triplet to 0%-100%. Components must be "<number>%" strings; the number
// parses as an integer when it has no decimal point and as a float
// otherwise. Anything else fails with MalformedPercentValue.
func NormalizePercentTriplet(rgb PercentRGB) (PercentRGB, error) {
	r, err := normalizePercent(rgb.R)
	if err != nil {
		return PercentRGB{}, err
	}
	g, err := normalizePercent(rgb.G)
	if err != nil {
		return PercentRGB{}, err
	}
	b, err := normalizePercent(rgb.B)
	if err != nil {
		return PercentRGB{}, err
	}
	return PercentRGB{R: r, G: g, B: b}, nil
}

func normalizePercent(value string) (string, error) {
	numeric, ok := strings.CutSuffix(value, "%")
	if !ok {
		return "", malformedPercent(value)
	}
	if !strings.Contains(numeric, ".") {
		n, err := strconv.Atoi(numeric)
		if err != nil {
			return "", malformedPercent(value)
		}
		switch {
		case n < 0:
			return "0%", nil
		case n > 100:
			return "100%", nil
		}
		return strconv.Itoa(n) + "%", nil
	}
	f, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return "", malformedPercent(value)
	}
	switch {
	case f < 0:
		return "0%", nil
	case f > 100:
		return "100%", nil
	}
	return strconv.FormatFloat(f, 'g', -1, 64) + "%", nil
}

func malformedPercent(value string) *ColorError {
	return colorErrorf(MalformedPercentValue, "%q is not a valid percentage value", value)
}
