package convert

import (
	"fmt"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// WPBakeryEmitter produces vc_* shortcode markup.
type WPBakeryEmitter struct{}

func (WPBakeryEmitter) Name() string              { return "wpbakery" }
func (WPBakeryEmitter) Format() core.OutputFormat { return core.FormatShortcode }

func (e WPBakeryEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	attrs := [][2]string{
		{"text", blockText(b)},
		{"font_container", fmt.Sprintf("tag:h%d|text_align:%s", headingLevel(b), blockAlign(b))},
	}
	if c := style.Color(b.Attr("textColor", "")); c != "" {
		attrs = append(attrs, [2]string{"color", c})
	}
	return scSelf("vc_custom_heading", attrs)
}

func (e WPBakeryEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	return scTag("vc_column_text", nil, "<p>"+style.EscapeHTML(blockText(b))+"</p>")
}

func (e WPBakeryEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	return scSelf("vc_single_image", [][2]string{
		{"source", "external_link"},
		{"custom_src", mediaURL(b)},
		{"alt_text", b.Attr("alt", "")},
	})
}

func (e WPBakeryEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	return scSelf("vc_btn", [][2]string{
		{"title", blockText(b)},
		{"link", "url:" + mediaURL(b)},
	})
}

func (e WPBakeryEmitter) EmitList(b *core.ContentBlock, st *State) any {
	tag := "ul"
	if isOrdered(b) {
		tag = "ol"
	}
	body := "<" + tag + ">"
	for _, it := range listItems(b) {
		body += "<li>" + style.EscapeHTML(it) + "</li>"
	}
	body += "</" + tag + ">"
	return scTag("vc_column_text", nil, body)
}

func (e WPBakeryEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	return scTag("vc_column_text", nil,
		"<blockquote>"+style.EscapeHTML(blockText(b))+"</blockquote>")
}

func (e WPBakeryEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return scSelf("vc_video", [][2]string{{"link", mediaURL(b)}})
}

func (e WPBakeryEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	return scTag("vc_raw_html", nil, style.EscapeHTML(mediaURL(b)))
}

func (e WPBakeryEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return scSelf("vc_separator", nil)
}

func (e WPBakeryEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	return scTag("vc_raw_html", nil, b.RawInnerContent)
}

func (e WPBakeryEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return scTag("vc_raw_html", nil, b.RawInnerContent)
}

func (e WPBakeryEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	inner := joinEmitted(children, "") + containerRaw(b, children)
	switch kind {
	case core.KindColumns:
		return scTag("vc_row", nil, inner)
	case core.KindColumn:
		return scTag("vc_column", [][2]string{{"width", "1/1"}}, inner)
	default:
		return scTag("vc_section", nil, inner)
	}
}

func (WPBakeryEmitter) Assemble(top []any, st *State) any {
	return joinEmitted(top, "\n")
}
