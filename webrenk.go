// Package webrenk converts between the color formats defined by the HTML
// and CSS specifications: color names, hexadecimal values, integer rgb()
// triplets and percentage rgb() triplets. It also provides the HTML5
// simple-color and legacy-color parsing algorithms.
//
// References:
// https://www.w3.org/TR/html401/types.html#h-6.5 (HTML 4 color names),
// https://www.w3.org/TR/css3-color/#svg-color (CSS 3/SVG color names),
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#colours
// (HTML5 color algorithms).
//
// Every function is a pure computation over immutable package-level
// tables, so the package is safe for concurrent use without locking.
package webrenk

// Specification identifies one of the Web standards that define a list of
// named colors. Each specification owns its own name table: CSS 2 reused
// the HTML 4 list, CSS 2.1 added orange, and CSS 3 adopted the much
// larger SVG keyword list.
type Specification string

const (
	HTML4 Specification = "html4"
	CSS2  Specification = "css2"
	CSS21 Specification = "css21"
	CSS3  Specification = "css3"

	// DefaultSpecification is used by name-based conversions when the
	// Specification argument is left as its zero value.
	DefaultSpecification = CSS3
)

// SupportedSpecifications lists the specifications accepted by the
// name-based conversion functions, in order of publication.
var SupportedSpecifications = []Specification{HTML4, CSS2, CSS21, CSS3}

func (s Specification) orDefault() Specification {
	if s == "" {
		return DefaultSpecification
	}
	return s
}

// IntegerRGB is a color expressed as integer red, green and blue
// components, each within 0-255 once normalized.
type IntegerRGB struct {
	R, G, B int
}

// PercentRGB is a color expressed as percentage strings such as "50%" or
// "12.5%", each within 0%-100% once normalized.
type PercentRGB struct {
	R, G, B string
}

// SimpleColor is an HTML5 simple color: an exact sRGB triple with 8-bit
// components. It is a distinct type from IntegerRGB because the HTML5
// algorithms are specified independently of the rgb() conversions and do
// not share their normalization rules.
type SimpleColor struct {
	R, G, B uint8
}
