package style

import "strings"

// htmlEscaper escapes the five characters that are unsafe inside HTML
// text and attribute values. Order matters: & must be escaped first,
// which strings.NewReplacer guarantees by replacing in a single pass.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes &, <, >, " and ' for embedding in HTML-producing
// output. Every converter that emits HTML or HTML-bearing shortcode
// attributes must route text through this helper.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
