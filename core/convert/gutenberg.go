package convert

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// GutenbergEmitter serializes blocks back into comment-delimited block
// markup. It is the round-trip target: parsing its output reproduces an
// equivalent tree.
type GutenbergEmitter struct{}

func (GutenbergEmitter) Name() string              { return "gutenberg" }
func (GutenbergEmitter) Format() core.OutputFormat { return core.FormatHTML }

func (e GutenbergEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	level := headingLevel(b)
	attrs := map[string]any{}
	if level != 2 {
		attrs["level"] = level
	}
	var class string
	if align := blockAlign(b); align != "left" {
		attrs["textAlign"] = align
		class = fmt.Sprintf(` class="has-text-align-%s"`, align)
	}
	body := fmt.Sprintf("<h%d%s>%s</h%d>", level, class, style.EscapeHTML(blockText(b)), level)
	return e.wrap("heading", attrs, body)
}

func (e GutenbergEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	attrs := map[string]any{}
	var class string
	if align := blockAlign(b); align != "left" {
		attrs["align"] = align
		class = fmt.Sprintf(` class="has-text-align-%s"`, align)
	}
	body := fmt.Sprintf("<p%s>%s</p>", class, style.EscapeHTML(blockText(b)))
	return e.wrap("paragraph", attrs, body)
}

func (e GutenbergEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	url := mediaURL(b)
	alt := b.Attr("alt", "")
	body := fmt.Sprintf(`<figure class="wp-block-image"><img src="%s" alt="%s"/></figure>`,
		style.EscapeHTML(url), style.EscapeHTML(alt))
	return e.wrap("image", map[string]any{}, body)
}

func (e GutenbergEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	body := fmt.Sprintf(`<div class="wp-block-button"><a class="wp-block-button__link" href="%s">%s</a></div>`,
		style.EscapeHTML(mediaURL(b)), style.EscapeHTML(blockText(b)))
	return e.wrap("button", map[string]any{}, body)
}

func (e GutenbergEmitter) EmitList(b *core.ContentBlock, st *State) any {
	tag := "ul"
	attrs := map[string]any{}
	if isOrdered(b) {
		tag = "ol"
		attrs["ordered"] = true
	}
	var items strings.Builder
	for _, it := range listItems(b) {
		items.WriteString("<li>")
		items.WriteString(style.EscapeHTML(it))
		items.WriteString("</li>")
	}
	body := fmt.Sprintf("<%s>%s</%s>", tag, items.String(), tag)
	return e.wrap("list", attrs, body)
}

func (e GutenbergEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	body := fmt.Sprintf(`<blockquote class="wp-block-quote"><p>%s</p></blockquote>`,
		style.EscapeHTML(blockText(b)))
	return e.wrap("quote", map[string]any{}, body)
}

func (e GutenbergEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	body := fmt.Sprintf(`<figure class="wp-block-video"><video controls src="%s"></video></figure>`,
		style.EscapeHTML(mediaURL(b)))
	return e.wrap("video", map[string]any{}, body)
}

func (e GutenbergEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	url := mediaURL(b)
	body := fmt.Sprintf(`<figure class="wp-block-embed"><div class="wp-block-embed__wrapper">%s</div></figure>`,
		style.EscapeHTML(url))
	return e.wrap("embed", map[string]any{"url": url}, body)
}

func (e GutenbergEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return `<!-- wp:separator --><hr class="wp-block-separator"/><!-- /wp:separator -->`
}

func (e GutenbergEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	inner := strings.TrimSpace(b.RawInnerContent)
	if inner == "" {
		inner = "<table></table>"
	}
	body := fmt.Sprintf(`<figure class="wp-block-table">%s</figure>`, inner)
	return e.wrap("table", map[string]any{}, body)
}

func (e GutenbergEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return e.wrap("html", map[string]any{}, b.RawInnerContent)
}

func (e GutenbergEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	var inner strings.Builder
	for _, c := range children {
		inner.WriteString(asString(c))
	}
	inner.WriteString(containerRaw(b, children))

	switch kind {
	case core.KindColumns:
		body := fmt.Sprintf(`<div class="wp-block-columns">%s</div>`, inner.String())
		return e.wrap("columns", map[string]any{}, body)
	case core.KindColumn:
		body := fmt.Sprintf(`<div class="wp-block-column">%s</div>`, inner.String())
		return e.wrap("column", map[string]any{}, body)
	default:
		body := fmt.Sprintf(`<div class="wp-block-group">%s</div>`, inner.String())
		return e.wrap("group", map[string]any{}, body)
	}
}

func (GutenbergEmitter) Assemble(top []any, st *State) any {
	parts := make([]string, 0, len(top))
	for _, t := range top {
		parts = append(parts, asString(t))
	}
	return strings.Join(parts, "\n")
}

// wrap serializes one block in marker grammar. Attribute maps marshal
// with sorted keys, so output is deterministic.
func (GutenbergEmitter) wrap(name string, attrs map[string]any, body string) string {
	marker := "wp:" + name
	if len(attrs) > 0 {
		if data, err := json.Marshal(attrs); err == nil {
			marker += " " + string(data)
		}
	}
	return fmt.Sprintf("<!-- %s -->%s<!-- /wp:%s -->", marker, body, name)
}
