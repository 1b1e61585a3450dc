package convert

import (
	"strconv"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// AvadaEmitter produces Fusion Builder (Avada) shortcode markup.
type AvadaEmitter struct{}

func (AvadaEmitter) Name() string              { return "avada" }
func (AvadaEmitter) Format() core.OutputFormat { return core.FormatShortcode }

func (e AvadaEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	attrs := [][2]string{
		{"size", strconv.Itoa(headingLevel(b))},
		{"content_align", blockAlign(b)},
	}
	if c := style.Color(b.Attr("textColor", "")); c != "" {
		attrs = append(attrs, [2]string{"text_color", c})
	}
	return scTag("fusion_title", attrs, style.EscapeHTML(blockText(b)))
}

func (e AvadaEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	return scTag("fusion_text", nil, "<p>"+style.EscapeHTML(blockText(b))+"</p>")
}

func (e AvadaEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	return scSelf("fusion_imageframe", [][2]string{
		{"image", mediaURL(b)},
		{"alt", b.Attr("alt", "")},
	})
}

func (e AvadaEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	return scTag("fusion_button", [][2]string{{"link", mediaURL(b)}},
		style.EscapeHTML(blockText(b)))
}

func (e AvadaEmitter) EmitList(b *core.ContentBlock, st *State) any {
	var body string
	for _, it := range listItems(b) {
		body += scTag("fusion_li_item", nil, style.EscapeHTML(it))
	}
	return scTag("fusion_checklist", nil, body)
}

func (e AvadaEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	return scTag("fusion_blockquote", nil, style.EscapeHTML(blockText(b)))
}

func (e AvadaEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return scSelf("fusion_video", [][2]string{{"video", mediaURL(b)}})
}

func (e AvadaEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	return scTag("fusion_code", nil, style.EscapeHTML(mediaURL(b)))
}

func (e AvadaEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return scSelf("fusion_separator", [][2]string{{"style_type", "single solid"}})
}

func (e AvadaEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	return scTag("fusion_code", nil, b.RawInnerContent)
}

func (e AvadaEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return scTag("fusion_code", nil, b.RawInnerContent)
}

func (e AvadaEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	inner := joinEmitted(children, "") + containerRaw(b, children)
	switch kind {
	case core.KindColumns:
		return scTag("fusion_builder_row", nil, inner)
	case core.KindColumn:
		return scTag("fusion_builder_column", [][2]string{{"type", "1_1"}}, inner)
	default:
		return scTag("fusion_builder_container", nil, inner)
	}
}

func (AvadaEmitter) Assemble(top []any, st *State) any {
	return joinEmitted(top, "\n")
}
