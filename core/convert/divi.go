package convert

import (
	"fmt"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// DiviEmitter produces et_pb_* shortcode markup.
type DiviEmitter struct{}

func (DiviEmitter) Name() string              { return "divi" }
func (DiviEmitter) Format() core.OutputFormat { return core.FormatShortcode }

func (e DiviEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	level := headingLevel(b)
	attrs := [][2]string{
		{"header_level", fmt.Sprintf("h%d", level)},
		{"text_orientation", blockAlign(b)},
	}
	if c := style.Color(b.Attr("textColor", "")); c != "" {
		attrs = append(attrs, [2]string{"header_text_color", c})
	}
	body := fmt.Sprintf("<h%d>%s</h%d>", level, style.EscapeHTML(blockText(b)), level)
	return scTag("et_pb_text", attrs, body)
}

func (e DiviEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	attrs := [][2]string{{"text_orientation", blockAlign(b)}}
	body := "<p>" + style.EscapeHTML(blockText(b)) + "</p>"
	return scTag("et_pb_text", attrs, body)
}

func (e DiviEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	return scSelf("et_pb_image", [][2]string{
		{"src", mediaURL(b)},
		{"alt", b.Attr("alt", "")},
	})
}

func (e DiviEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	return scSelf("et_pb_button", [][2]string{
		{"button_url", mediaURL(b)},
		{"button_text", blockText(b)},
	})
}

func (e DiviEmitter) EmitList(b *core.ContentBlock, st *State) any {
	tag := "ul"
	if isOrdered(b) {
		tag = "ol"
	}
	body := "<" + tag + ">"
	for _, it := range listItems(b) {
		body += "<li>" + style.EscapeHTML(it) + "</li>"
	}
	body += "</" + tag + ">"
	return scTag("et_pb_text", nil, body)
}

func (e DiviEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	body := "<blockquote>" + style.EscapeHTML(blockText(b)) + "</blockquote>"
	return scTag("et_pb_text", nil, body)
}

func (e DiviEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return scSelf("et_pb_video", [][2]string{{"src", mediaURL(b)}})
}

func (e DiviEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	return scTag("et_pb_code", nil, style.EscapeHTML(mediaURL(b)))
}

func (e DiviEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return scSelf("et_pb_divider", nil)
}

func (e DiviEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	return scTag("et_pb_code", nil, b.RawInnerContent)
}

func (e DiviEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return scTag("et_pb_code", nil, b.RawInnerContent)
}

func (e DiviEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	inner := joinEmitted(children, "") + containerRaw(b, children)
	switch kind {
	case core.KindColumns:
		return scTag("et_pb_row", [][2]string{
			{"column_structure", diviColumnStructure(len(children))},
		}, inner)
	case core.KindColumn:
		return scTag("et_pb_column", [][2]string{{"type", "1_1"}}, inner)
	default:
		return scTag("et_pb_section", nil, inner)
	}
}

func (DiviEmitter) Assemble(top []any, st *State) any {
	return joinEmitted(top, "\n")
}

// diviColumnStructure maps a column count onto Divi's structure notation.
func diviColumnStructure(n int) string {
	switch n {
	case 2:
		return "1_2,1_2"
	case 3:
		return "1_3,1_3,1_3"
	case 4:
		return "1_4,1_4,1_4,1_4"
	}
	return "1_1"
}
