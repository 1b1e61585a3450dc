package convert

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// KadenceEmitter produces Kadence-flavored block markup: the same
// comment-delimited grammar as Gutenberg but with kadence-namespaced
// container blocks and kt-/kb- class conventions. Its fingerprint is a
// strict superset of generic block markup, which is why detection must
// check Kadence before Gutenberg.
type KadenceEmitter struct{}

func (KadenceEmitter) Name() string              { return "kadence" }
func (KadenceEmitter) Format() core.OutputFormat { return core.FormatHTML }

func (e KadenceEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	id := st.NextID()
	level := headingLevel(b)
	attrs := map[string]any{"uniqueID": fmt.Sprintf("_kt%04d", id), "level": level}
	if c := style.Color(b.Attr("textColor", "")); c != "" {
		attrs["color"] = c
	}
	body := fmt.Sprintf(`<h%d class="kt-adv-heading_kt%04d wp-block-kadence-advancedheading">%s</h%d>`,
		level, id, style.EscapeHTML(blockText(b)), level)
	return e.wrap("advancedheading", attrs, body)
}

func (e KadenceEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	var class string
	if align := blockAlign(b); align != "left" {
		class = fmt.Sprintf(` class="has-text-align-%s"`, align)
	}
	return fmt.Sprintf("<!-- wp:paragraph --><p%s>%s</p><!-- /wp:paragraph -->",
		class, style.EscapeHTML(blockText(b)))
}

func (e KadenceEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	id := st.NextID()
	attrs := map[string]any{"uniqueID": fmt.Sprintf("_kt%04d", id)}
	body := fmt.Sprintf(`<figure class="kb-image_kt%04d wp-block-kadence-image"><img src="%s" alt="%s"/></figure>`,
		id, style.EscapeHTML(mediaURL(b)), style.EscapeHTML(b.Attr("alt", "")))
	return e.wrap("image", attrs, body)
}

func (e KadenceEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	id := st.NextID()
	attrs := map[string]any{"uniqueID": fmt.Sprintf("_kt%04d", id)}
	body := fmt.Sprintf(`<div class="kb-buttons-wrap"><a class="kb-button kt-button_kt%04d" href="%s">%s</a></div>`,
		id, style.EscapeHTML(mediaURL(b)), style.EscapeHTML(blockText(b)))
	return e.wrap("advancedbtn", attrs, body)
}

func (e KadenceEmitter) EmitList(b *core.ContentBlock, st *State) any {
	tag := "ul"
	if isOrdered(b) {
		tag = "ol"
	}
	var items strings.Builder
	for _, it := range listItems(b) {
		items.WriteString("<li>" + style.EscapeHTML(it) + "</li>")
	}
	return fmt.Sprintf("<!-- wp:list --><%s>%s</%s><!-- /wp:list -->", tag, items.String(), tag)
}

func (e KadenceEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	return fmt.Sprintf(`<!-- wp:quote --><blockquote class="wp-block-quote"><p>%s</p></blockquote><!-- /wp:quote -->`,
		style.EscapeHTML(blockText(b)))
}

func (e KadenceEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return fmt.Sprintf(`<!-- wp:video --><figure class="wp-block-video"><video controls src="%s"></video></figure><!-- /wp:video -->`,
		style.EscapeHTML(mediaURL(b)))
}

func (e KadenceEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	url := mediaURL(b)
	return fmt.Sprintf(`<!-- wp:embed {"url":%q} --><figure class="wp-block-embed">%s</figure><!-- /wp:embed -->`,
		url, style.EscapeHTML(url))
}

func (e KadenceEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	id := st.NextID()
	return fmt.Sprintf(`<!-- wp:kadence/spacer {"uniqueID":"_kt%04d"} --><div class="kt-block-spacer_kt%04d"><hr class="kt-divider"/></div><!-- /wp:kadence/spacer -->`, id, id)
}

func (e KadenceEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	inner := strings.TrimSpace(b.RawInnerContent)
	if inner == "" {
		inner = "<table></table>"
	}
	return fmt.Sprintf(`<!-- wp:table --><figure class="wp-block-table">%s</figure><!-- /wp:table -->`, inner)
}

func (e KadenceEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return fmt.Sprintf("<!-- wp:html -->%s<!-- /wp:html -->", b.RawInnerContent)
}

func (e KadenceEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	id := st.NextID()
	var inner strings.Builder
	for _, c := range children {
		inner.WriteString(asString(c))
	}
	inner.WriteString(containerRaw(b, children))

	switch kind {
	case core.KindColumns:
		attrs := map[string]any{"uniqueID": fmt.Sprintf("_kt%04d", id), "columns": len(children)}
		body := fmt.Sprintf(`<div class="kt-row-layout-inner kt-row-layout_kt%04d">%s</div>`, id, inner.String())
		return e.wrap("rowlayout", attrs, body)
	case core.KindColumn:
		attrs := map[string]any{"uniqueID": fmt.Sprintf("_kt%04d", id)}
		body := fmt.Sprintf(`<div class="wp-block-kadence-column kadence-column_kt%04d">%s</div>`, id, inner.String())
		return e.wrap("column", attrs, body)
	default:
		attrs := map[string]any{"uniqueID": fmt.Sprintf("_kt%04d", id)}
		body := fmt.Sprintf(`<section class="kt-row-layout-wrap kb-section_kt%04d">%s</section>`, id, inner.String())
		return e.wrap("rowlayout", attrs, body)
	}
}

func (KadenceEmitter) Assemble(top []any, st *State) any {
	parts := make([]string, 0, len(top))
	for _, t := range top {
		parts = append(parts, asString(t))
	}
	return strings.Join(parts, "\n")
}

// wrap serializes one kadence-namespaced block in marker grammar.
func (KadenceEmitter) wrap(name string, attrs map[string]any, body string) string {
	marker := "wp:kadence/" + name
	if len(attrs) > 0 {
		if data, err := json.Marshal(attrs); err == nil {
			marker += " " + string(data)
		}
	}
	return fmt.Sprintf("<!-- %s -->%s<!-- /wp:kadence/%s -->", marker, body, name)
}
