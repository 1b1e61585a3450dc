package style

import "strings"

// validAlignments are the values converters understand. Anything else
// resolves to the default.
var validAlignments = map[string]bool{
	"left":    true,
	"right":   true,
	"center":  true,
	"justify": true,
}

// Alignment resolves text alignment with the shared precedence rule:
// explicit block attribute > computed style > "left".
func Alignment(attr, computed string) string {
	if a := strings.ToLower(strings.TrimSpace(attr)); validAlignments[a] {
		return a
	}
	if c := strings.ToLower(strings.TrimSpace(computed)); validAlignments[c] {
		return c
	}
	return "left"
}
