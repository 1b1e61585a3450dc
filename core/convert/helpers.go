package convert

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// blockText returns the plain text carried by a block: an explicit
// content attribute wins, otherwise the inner HTML is reduced to its
// text nodes.
func blockText(b *core.ContentBlock) string {
	if s := b.Attr("content", ""); s != "" {
		return s
	}
	return innerText(b.RawInnerContent)
}

// innerText collects the text nodes of an HTML fragment. Unparsable
// fragments fall back to the raw string with tags left in place; the
// passthrough contract forbids dropping content.
func innerText(fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" || !strings.Contains(fragment, "<") {
		return fragment
	}
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(b.String())
}

// listItems extracts list entries from a block: the synthetic "items"
// attribute if the snapshot normalizer supplied one, else the <li>
// elements of the inner HTML, else the inner text as a single item.
func listItems(b *core.ContentBlock) []string {
	if raw, ok := b.Attributes["items"].([]any); ok {
		items := make([]string, 0, len(raw))
		for _, it := range raw {
			if s, ok := it.(string); ok && s != "" {
				items = append(items, s)
			}
		}
		return items
	}

	if strings.Contains(b.RawInnerContent, "<li") {
		if items := liItems(b.RawInnerContent); len(items) > 0 {
			return items
		}
	}

	if text := innerText(b.RawInnerContent); text != "" {
		var items []string
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				items = append(items, line)
			}
		}
		return items
	}
	return nil
}

// liItems collects the text of each <li> in an HTML fragment.
func liItems(fragment string) []string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil
	}
	var items []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			var b strings.Builder
			var text func(*html.Node)
			text = func(t *html.Node) {
				if t.Type == html.TextNode {
					b.WriteString(t.Data)
				}
				for c := t.FirstChild; c != nil; c = c.NextSibling {
					text(c)
				}
			}
			text(n)
			if s := strings.TrimSpace(b.String()); s != "" {
				items = append(items, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return items
}

// blockAlign resolves a block's alignment through the shared precedence
// rule. The snapshot normalizer folds computed style into the "align"
// attribute, so both paths resolve identically here.
func blockAlign(b *core.ContentBlock) string {
	return style.Alignment(b.Attr("align", b.Attr("textAlign", "")), "")
}

// headingLevel returns the block's heading level clamped to 1..6.
func headingLevel(b *core.ContentBlock) int {
	level := b.AttrInt("level", 2)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return level
}

// mediaURL returns a block's primary media URL from the usual attribute
// spellings.
func mediaURL(b *core.ContentBlock) string {
	for _, key := range []string{"url", "src", "href", "mediaURL"} {
		if v := b.Attr(key, ""); v != "" {
			return v
		}
	}
	return ""
}

// containerRaw returns the unparsed inner content a childless container
// must still carry through: depth-truncated markup lands in the deepest
// recognized node's RawInnerContent and may never be dropped.
func containerRaw(b *core.ContentBlock, children []any) string {
	if len(children) == 0 {
		return b.RawInnerContent
	}
	return ""
}

// isOrdered reports whether a list block is ordered.
func isOrdered(b *core.ContentBlock) bool {
	if v, ok := b.Attributes["ordered"].(bool); ok {
		return v
	}
	return strings.Contains(b.RawInnerContent, "<ol")
}
