// Package style holds the normalization rules shared by every builder
// converter: color canonicalization, alignment resolution, CSS spacing
// shorthand expansion, and HTML escaping. Converters must use these
// helpers rather than reimplement them, so that all eleven targets agree
// on the same inputs.
package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rgbRegex matches rgb(r, g, b) and rgba(r, g, b, a) with integer or
// percentage-free components.
var rgbRegex = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)$`)

// Color canonicalizes a CSS color value:
//   - hex values pass through uppercased (#ff0000 → #FF0000)
//   - rgb()/rgba() convert to 6-digit hex, dropping alpha
//   - transparent/inherit resolve to "" (no color emitted)
//   - named or unparsable values pass through unchanged
func Color(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}

	switch strings.ToLower(v) {
	case "transparent", "inherit":
		return ""
	}

	if strings.HasPrefix(v, "#") {
		return strings.ToUpper(v)
	}

	if m := rgbRegex.FindStringSubmatch(v); m != nil {
		r := clampChannel(m[1])
		g := clampChannel(m[2])
		b := clampChannel(m[3])
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}

	return v
}

// clampChannel parses a color channel and clamps it to [0, 255].
func clampChannel(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
