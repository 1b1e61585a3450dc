package style

import "strings"

// Spacing is a fully expanded padding/margin value.
type Spacing struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

// ExpandSpacing expands a CSS padding/margin shorthand into explicit
// sides using the standard 1/2/3/4-value rules:
//
//	1 value  → all sides
//	2 values → vertical / horizontal
//	3 values → top / horizontal / bottom
//	4 values → top / right / bottom / left
//
// An empty or over-long shorthand yields a zero Spacing.
func ExpandSpacing(shorthand string) Spacing {
	parts := strings.Fields(strings.TrimSpace(shorthand))
	switch len(parts) {
	case 1:
		return Spacing{Top: parts[0], Right: parts[0], Bottom: parts[0], Left: parts[0]}
	case 2:
		return Spacing{Top: parts[0], Right: parts[1], Bottom: parts[0], Left: parts[1]}
	case 3:
		return Spacing{Top: parts[0], Right: parts[1], Bottom: parts[2], Left: parts[1]}
	case 4:
		return Spacing{Top: parts[0], Right: parts[1], Bottom: parts[2], Left: parts[3]}
	}
	return Spacing{}
}

// IsZero reports whether no side carries a value.
func (s Spacing) IsZero() bool {
	return s.Top == "" && s.Right == "" && s.Bottom == "" && s.Left == ""
}
