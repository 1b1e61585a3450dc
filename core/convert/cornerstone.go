package convert

import (
	"strconv"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// CornerstoneEmitter produces cs_*/x_* shortcode markup.
type CornerstoneEmitter struct{}

func (CornerstoneEmitter) Name() string              { return "cornerstone" }
func (CornerstoneEmitter) Format() core.OutputFormat { return core.FormatShortcode }

func (e CornerstoneEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	return scSelf("x_custom_headline", [][2]string{
		{"level", "h" + strconv.Itoa(headingLevel(b))},
		{"content", blockText(b)},
		{"class", "man text-" + blockAlign(b)},
	})
}

func (e CornerstoneEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	return scTag("cs_text", nil, "<p>"+style.EscapeHTML(blockText(b))+"</p>")
}

func (e CornerstoneEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	return scSelf("x_image", [][2]string{
		{"src", mediaURL(b)},
		{"alt", b.Attr("alt", "")},
	})
}

func (e CornerstoneEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	return scTag("x_button", [][2]string{{"href", mediaURL(b)}},
		style.EscapeHTML(blockText(b)))
}

func (e CornerstoneEmitter) EmitList(b *core.ContentBlock, st *State) any {
	tag := "ul"
	if isOrdered(b) {
		tag = "ol"
	}
	body := "<" + tag + ">"
	for _, it := range listItems(b) {
		body += "<li>" + style.EscapeHTML(it) + "</li>"
	}
	body += "</" + tag + ">"
	return scTag("cs_text", nil, body)
}

func (e CornerstoneEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	return scTag("x_blockquote", nil, style.EscapeHTML(blockText(b)))
}

func (e CornerstoneEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return scSelf("x_video_player", [][2]string{{"src", mediaURL(b)}})
}

func (e CornerstoneEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	return scTag("cs_text", nil, style.EscapeHTML(mediaURL(b)))
}

func (e CornerstoneEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return scSelf("x_line", nil)
}

func (e CornerstoneEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	return scTag("cs_text", nil, b.RawInnerContent)
}

func (e CornerstoneEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return scTag("cs_text", nil, b.RawInnerContent)
}

func (e CornerstoneEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	inner := joinEmitted(children, "") + containerRaw(b, children)
	switch kind {
	case core.KindColumns:
		return scTag("cs_row", [][2]string{{"inner_container", "true"}}, inner)
	case core.KindColumn:
		return scTag("cs_column", [][2]string{{"fade", "false"}}, inner)
	default:
		return scTag("cs_section", nil, inner)
	}
}

func (CornerstoneEmitter) Assemble(top []any, st *State) any {
	return joinEmitted(top, "\n")
}
