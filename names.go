package webrenk

import "maps"

// Named color tables, one per supported specification. Keys are lowercase
// names; values are normalized 6-digit lowercase hex. Several names may
// map to the same hex value; canonicalNames below decides which spelling
// a reverse lookup returns. None of these maps may be mutated after
// package initialization.

// HTML4NamesToHex maps the 16 HTML 4 color names to hex values.
// Reference: https://www.w3.org/TR/html401/types.html#h-6.5
var HTML4NamesToHex = map[string]string{
	"camgöbeği": "#00ffff",
	"siyahı":    "#000000",
	"mavisi":    "#0000ff",
	"fuşyası":   "#ff00ff",
	"yeşili":    "#008000",
	"grisi":     "#808080",
	"lime":      "#00ff00",
	"maroon":    "#800000",
	"navy":      "#000080",
	"olive":     "#808000",
	"moru":      "#800080",
	"kırmızısı": "#ff0000",
	"gümüşü":    "#c0c0c0",
	"teal":      "#008080",
	"beyazı":    "#ffffff",
	"sarısı":    "#ffff00",
}

// CSS2NamesToHex maps CSS 2 color names to hex values. CSS 2 used the
// same list as HTML 4.
var CSS2NamesToHex = HTML4NamesToHex

// CSS21NamesToHex maps CSS 2.1 color names to hex values: the HTML 4
// list extended with orange. Built by merge in init.
var CSS21NamesToHex map[string]string

// CSS3NamesToHex maps the CSS 3/SVG color names to hex values.
// Reference: https://www.w3.org/TR/SVG11/types.html#ColorKeywords
var CSS3NamesToHex = map[string]string{
	"camgöbeği":           "#00ffff",
	"antik beyazı":        "#faebd7",
	"akuamarini":          "#7fffd4",
	"azuresi":             "#f0ffff",
	"beji":                "#f5f5dc",
	"bisküvisi":           "#ffe4c4",
	"siyahı":              "#000000",
	"bademi":              "#ffebcd",
	"mavisi":              "#add8e6",
	"bondi mavisi":        "#0095b6",
	"yeşimi":              "#00a86b",
	"ecrusu":              "#cdb091",
	"mavieftalunu":        "#8a2be2",
	"kahverengisi":        "#a52a2a",
	"odunu":               "#deb887",
	"aday mavisi":         "#5f9ea0",
	"cix yeşili":          "#7fff00",
	"çikolatası":          "#d2691e",
	"mercanı":             "#ff7f50",
	"galibardası":         "#ff0090",
	"peygamber çiçeği":    "#6495ed",
	"açık sarısı":         "#ffffe0",
	"kızılı":              "#dc143c",
	"siyanı":              "#e0ffff",
	"koyu mavisi":         "#00008b",
	"altını":              "#fafad2",
	"grisi":               "#d3d3d3",
	"yeşili":              "#008000",
	"hakisi":              "#f0e68c",
	"magentası":           "#ff00ff",
	"zeytini":             "#808000",
	"portakalı":           "#ff8c00",
	"orkidesi":            "#da70d6",
	"bordosu":             "#800000",
	"somonu":              "#fa8072",
	"yosunu":              "#8fbc8f",
	"arduvazi mavisi":     "#483d8b",
	"arduvazi grisi":      "#2f4f4f",
	"arduvazi turkuazı":   "#00ced1",
	"eflatunu":            "#ee82ee",
	"derin pembesi":       "#ff1493",
	"derin gök mavisi":    "#00bfff",
	"loş grisi":           "#696969",
	"tuğlası":             "#b22222",
	"çiçeği beyazı":       "#fffaf0",
	"ormanı yeşili":       "#228b22",
	"fuşyası":             "#ff00ff",
	"garip grisi":         "#dcdcdc",
	"hayalet beyazı":      "#f8f8ff",
	"yeşimsarısı":         "#adff2f",
	"balkavunu":           "#f0fff0",
	"ateşli pembesi":      "#ff69b4",
	"hint kırmızısı":      "#cd5c5c",
	"fildişisi":           "#fffff0",
	"fok kahvesi":         "#321414",
	"lavantası":           "#fff0f5",
	"safiri":              "#082567",
	"otu yeşili":          "#7cfc00",
	"limonu":              "#fffacd",
	"açık mercanı":        "#f08080",
	"açık yeşili":         "#90ee90",
	"açık pembesi":        "#ffb6c1",
	"açık somonu":         "#ffa07a",
	"açık deniz yeşili":   "#20b2aa",
	"açık gök mavisi":     "#87cefa",
	"açık arduvazi grisi": "#778899",
	"açık çelik mavisi":   "#b0c4de",
	"misket limonu":       "#00ff00",
	"yeşil limonu":        "#32cd32",
	"ipeği":               "#faf0e6",
	"maronu":              "#800000",
	"gece mavisi":         "#191970",
	"nanesi":              "#f5fffa",
	"buzlu gülü":          "#ffe4e1",
	"mokaseni":            "#ffe4b5",
	"navajosu":            "#ffdead",
	"navisi":              "#000080",
	"eski ipliği":         "#fdf5e6",
	"kuşkonmazı":          "#465945",
	"kabağı":              "#ff7518",
	"havucu":              "#ed9121",
	"kehribarı":           "#ffbf00",
	"kobaltı":             "#0047ab",
	"köselesi":            "#f0dc82",
	"kremrengi":           "#fffdd0",
	"çiviti":              "#4b0082",
	"malakiti":            "#0bda51",
	"zeytinyağı":          "#6b8e23",
	"turuncusu":           "#ffa500",
	"ateşi":               "#ff4d00",
	"yavruağzı":           "#ff7f00",
	"papayası":            "#ffefd5",
	"şeftalisi":           "#ffdab9",
	"perusu":              "#cd853f",
	"pembesi":             "#ffc0cb",
	"eriği":               "#dda0dd",
	"tozmavisi":           "#b0e0e6",
	"moru":                "#800080",
	"kırmızısı":           "#ff0000",
	"kızılkahvesi":        "#bc8f8f",
	"asil mavisi":         "#4169e1",
	"eğer kahvesi":        "#8b4513",
	"kumulu":              "#f4a460",
	"deniz yeşili":        "#2e8b57",
	"denizkabuğu":         "#fff5ee",
	"toprağı":             "#a0522d",
	"gümüşü":              "#c0c0c0",
	"gök mavisi":          "#87ceeb",
	"kayrak mavisi":       "#6a5acd",
	"kayrak grisi":        "#708090",
	"karbeyazı":           "#fffafa",
	"bahar yeşili":        "#00ff7f",
	"çelik mavisi":        "#4682b4",
	"bronzu":              "#d2b48c",
	"teal":                "#008080",
	"thistle":             "#d8bfd8",
	"domatesi":            "#ff6347",
	"turkuazı":            "#40e0d0",
	"buğdayı":             "#f5deb3",
	"beyazı":              "#ffffff",
	"dumanbeyazı":         "#f5f5f5",
	"sarısı":              "#ffff00",
	"sarımtırakyeşili":    "#9acd32",
	"alizarı":             "#e32636",
	"arseniği":            "#3b444b",
	"celadonu":            "#ace1af",
	"burgonyası":          "#900020",
	"devedikeni":          "#d8bfd8",
}

// Reverse tables, mapping normalized hex values back to a single
// canonical name per specification. Built in init.
var (
	HTML4HexToNames map[string]string
	CSS2HexToNames  map[string]string
	CSS21HexToNames map[string]string
	CSS3HexToNames  map[string]string
)

// css3CanonicalNames pins the spelling a reverse lookup returns for each
// hex value that several CSS 3 names map to. Map iteration order must
// never decide the winner.
var css3CanonicalNames = map[string]string{
	"#ff00ff": "fuşyası",    // over magentası
	"#800000": "maronu",     // over bordosu
	"#d8bfd8": "devedikeni", // over thistle
}

func init() {
	CSS21NamesToHex = maps.Clone(HTML4NamesToHex)
	CSS21NamesToHex["orange"] = "#ffa500"

	HTML4HexToNames = reverseTable(HTML4NamesToHex, nil)
	CSS2HexToNames = HTML4HexToNames
	CSS21HexToNames = reverseTable(CSS21NamesToHex, nil)
	CSS3HexToNames = reverseTable(CSS3NamesToHex, css3CanonicalNames)
}

// reverseTable inverts a name→hex table. Hex values claimed by more than
// one name must appear in canonical, which picks the winning spelling.
func reverseTable(names, canonical map[string]string) map[string]string {
	rev := make(map[string]string, len(names))
	for name, hex := range names {
		if winner, ok := canonical[hex]; ok {
			rev[hex] = winner
			continue
		}
		rev[hex] = name
	}
	return rev
}

func namesToHex(spec Specification) (map[string]string, error) {
	switch spec {
	case HTML4:
		return HTML4NamesToHex, nil
	case CSS2:
		return CSS2NamesToHex, nil
	case CSS21:
		return CSS21NamesToHex, nil
	case CSS3:
		return CSS3NamesToHex, nil
	}
	return nil, unsupportedSpecification(spec)
}

func hexToNames(spec Specification) (map[string]string, error) {
	switch spec {
	case HTML4:
		return HTML4HexToNames, nil
	case CSS2:
		return CSS2HexToNames, nil
	case CSS21:
		return CSS21HexToNames, nil
	case CSS3:
		return CSS3HexToNames, nil
	}
	return nil, unsupportedSpecification(spec)
}

func unsupportedSpecification(spec Specification) *ColorError {
	return colorErrorf(UnsupportedSpecification,
		"%q is not a supported specification for color name lookups; supported specifications are: html4, css2, css21, css3", spec)
}
