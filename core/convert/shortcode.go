package convert

import "strings"

// scTag renders one bracket shortcode with ordered attributes and a body:
// [tag k="v"]body[/tag]. Attributes with empty values are omitted.
func scTag(tag string, attrs [][2]string, body string) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(tag)
	writeSCAttrs(&b, attrs)
	b.WriteByte(']')
	b.WriteString(body)
	b.WriteString("[/")
	b.WriteString(tag)
	b.WriteByte(']')
	return b.String()
}

// scSelf renders a self-closing shortcode: [tag k="v" /].
func scSelf(tag string, attrs [][2]string) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(tag)
	writeSCAttrs(&b, attrs)
	b.WriteString(" /]")
	return b.String()
}

func writeSCAttrs(b *strings.Builder, attrs [][2]string) {
	for _, kv := range attrs {
		if kv[1] == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(kv[0])
		b.WriteString(`="`)
		b.WriteString(strings.ReplaceAll(kv[1], `"`, "&quot;"))
		b.WriteByte('"')
	}
}

// joinEmitted concatenates emitted string values, used by every
// string-valued emitter's container and assemble steps.
func joinEmitted(parts []any, sep string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, asString(p))
	}
	return strings.Join(out, sep)
}
