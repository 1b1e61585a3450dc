package convert

import (
	"fmt"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// BricksEmitter produces the Bricks element list: a flat array of
// brxe elements referencing each other by id/parent, per-call state in
// State.Scratch like the Beaver registry.
type BricksEmitter struct{}

func (BricksEmitter) Name() string              { return "bricks" }
func (BricksEmitter) Format() core.OutputFormat { return core.FormatJSON }

func bricksElements(st *State) *[]map[string]any {
	if v, ok := st.Scratch["bricks_elements"].(*[]map[string]any); ok {
		return v
	}
	elements := &[]map[string]any{}
	st.Scratch["bricks_elements"] = elements
	return elements
}

func (e BricksEmitter) addElement(st *State, name string, settings map[string]any) string {
	id := fmt.Sprintf("brx%04d", st.NextID())
	elements := bricksElements(st)
	*elements = append(*elements, map[string]any{
		"id":       id,
		"name":     name,
		"parent":   "0",
		"children": []any{},
		"settings": settings,
	})
	return id
}

func (e BricksEmitter) adopt(st *State, parent string, children []any) {
	elements := bricksElements(st)
	ids := make([]any, 0, len(children))
	for _, c := range children {
		ids = append(ids, asString(c))
	}
	for _, el := range *elements {
		if el["id"] == parent {
			el["children"] = ids
		}
	}
	for _, c := range children {
		id := asString(c)
		for _, el := range *elements {
			if el["id"] == id {
				el["parent"] = parent
			}
		}
	}
}

func (e BricksEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	settings := map[string]any{
		"text":      blockText(b),
		"tag":       fmt.Sprintf("h%d", headingLevel(b)),
		"textAlign": blockAlign(b),
	}
	if c := style.Color(b.Attr("textColor", "")); c != "" {
		settings["color"] = map[string]any{"hex": c}
	}
	return e.addElement(st, "heading", settings)
}

func (e BricksEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	return e.addElement(st, "text-basic", map[string]any{
		"text": style.EscapeHTML(blockText(b)),
	})
}

func (e BricksEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	return e.addElement(st, "image", map[string]any{
		"image":   map[string]any{"url": mediaURL(b)},
		"altText": b.Attr("alt", ""),
	})
}

func (e BricksEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	return e.addElement(st, "button", map[string]any{
		"text": blockText(b),
		"link": map[string]any{"type": "external", "url": mediaURL(b)},
	})
}

func (e BricksEmitter) EmitList(b *core.ContentBlock, st *State) any {
	items := listItems(b)
	entries := make([]any, 0, len(items))
	for _, it := range items {
		entries = append(entries, map[string]any{"title": it})
	}
	return e.addElement(st, "list", map[string]any{"items": entries})
}

func (e BricksEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	return e.addElement(st, "text-basic", map[string]any{
		"text": style.EscapeHTML(blockText(b)),
		"tag":  "blockquote",
	})
}

func (e BricksEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return e.addElement(st, "video", map[string]any{
		"videoType": "file",
		"fileUrl":   mediaURL(b),
	})
}

func (e BricksEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	return e.addElement(st, "code", map[string]any{
		"code": fmt.Sprintf(`<iframe src="%s"></iframe>`, style.EscapeHTML(mediaURL(b))),
	})
}

func (e BricksEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return e.addElement(st, "divider", map[string]any{})
}

func (e BricksEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	return e.addElement(st, "code", map[string]any{"code": b.RawInnerContent})
}

func (e BricksEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return e.addElement(st, "code", map[string]any{"code": b.RawInnerContent})
}

func (e BricksEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	name := "section"
	switch kind {
	case core.KindColumns:
		name = "container"
	case core.KindColumn:
		name = "block"
	}
	settings := map[string]any{}
	if raw := containerRaw(b, children); raw != "" {
		settings["code"] = raw
	}
	id := e.addElement(st, name, settings)
	e.adopt(st, id, children)
	return id
}

func (e BricksEmitter) Assemble(top []any, st *State) any {
	return map[string]any{
		"content": *bricksElements(st),
		"source":  "blockbridge",
	}
}
