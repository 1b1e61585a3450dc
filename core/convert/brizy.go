package convert

import (
	"fmt"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// BrizyEmitter produces Brizy's value-wrapped item tree.
type BrizyEmitter struct{}

func (BrizyEmitter) Name() string              { return "brizy" }
func (BrizyEmitter) Format() core.OutputFormat { return core.FormatJSON }

func brizyID(st *State) string {
	return fmt.Sprintf("brz%04d", st.NextID())
}

func (e BrizyEmitter) item(st *State, typ string, value map[string]any) map[string]any {
	value["_id"] = brizyID(st)
	return map[string]any{"type": typ, "value": value}
}

func (e BrizyEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	level := headingLevel(b)
	text := fmt.Sprintf("<h%d>%s</h%d>", level, style.EscapeHTML(blockText(b)), level)
	return e.item(st, "RichText", map[string]any{
		"text":            text,
		"horizontalAlign": blockAlign(b),
	})
}

func (e BrizyEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	return e.item(st, "RichText", map[string]any{
		"text":            "<p>" + style.EscapeHTML(blockText(b)) + "</p>",
		"horizontalAlign": blockAlign(b),
	})
}

func (e BrizyEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	return e.item(st, "Image", map[string]any{
		"imageSrc": mediaURL(b),
		"alt":      b.Attr("alt", ""),
	})
}

func (e BrizyEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	return e.item(st, "Button", map[string]any{
		"text":         blockText(b),
		"linkExternal": mediaURL(b),
	})
}

func (e BrizyEmitter) EmitList(b *core.ContentBlock, st *State) any {
	tag := "ul"
	if isOrdered(b) {
		tag = "ol"
	}
	text := "<" + tag + ">"
	for _, it := range listItems(b) {
		text += "<li>" + style.EscapeHTML(it) + "</li>"
	}
	text += "</" + tag + ">"
	return e.item(st, "RichText", map[string]any{"text": text})
}

func (e BrizyEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	return e.item(st, "RichText", map[string]any{
		"text": "<blockquote>" + style.EscapeHTML(blockText(b)) + "</blockquote>",
	})
}

func (e BrizyEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return e.item(st, "Video", map[string]any{"video": mediaURL(b)})
}

func (e BrizyEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	return e.item(st, "Embed", map[string]any{"code": mediaURL(b)})
}

func (e BrizyEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return e.item(st, "Line", map[string]any{"style": "solid"})
}

func (e BrizyEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	return e.item(st, "Embed", map[string]any{"code": b.RawInnerContent})
}

func (e BrizyEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return e.item(st, "Embed", map[string]any{"code": b.RawInnerContent})
}

func (e BrizyEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	name := "Wrapper"
	switch kind {
	case core.KindColumns:
		name = "Row"
	case core.KindColumn:
		name = "Column"
	}
	value := map[string]any{"items": children}
	if raw := containerRaw(b, children); raw != "" {
		value["html"] = raw
	}
	return e.item(st, name, value)
}

func (e BrizyEmitter) Assemble(top []any, st *State) any {
	return map[string]any{
		"type":   "Section",
		"blocks": top,
	}
}
