package convert

import (
	"fmt"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// OxygenEmitter produces the Oxygen ct_* component tree.
type OxygenEmitter struct{}

func (OxygenEmitter) Name() string              { return "oxygen" }
func (OxygenEmitter) Format() core.OutputFormat { return core.FormatJSON }

func (e OxygenEmitter) component(st *State, name string, options map[string]any) map[string]any {
	return map[string]any{
		"id":      st.NextID(),
		"name":    name,
		"options": options,
	}
}

func (e OxygenEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	options := map[string]any{
		"ct_content": blockText(b),
		"tag":        fmt.Sprintf("h%d", headingLevel(b)),
		"text-align": blockAlign(b),
	}
	if c := style.Color(b.Attr("textColor", "")); c != "" {
		options["color"] = c
	}
	return e.component(st, "ct_headline", options)
}

func (e OxygenEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	return e.component(st, "ct_text_block", map[string]any{
		"ct_content": blockText(b),
		"text-align": blockAlign(b),
	})
}

func (e OxygenEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	return e.component(st, "ct_image", map[string]any{
		"src": mediaURL(b),
		"alt": b.Attr("alt", ""),
	})
}

func (e OxygenEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	return e.component(st, "ct_link_button", map[string]any{
		"ct_content": blockText(b),
		"url":        mediaURL(b),
	})
}

func (e OxygenEmitter) EmitList(b *core.ContentBlock, st *State) any {
	items := listItems(b)
	entries := make([]any, 0, len(items))
	for _, it := range items {
		entries = append(entries, it)
	}
	return e.component(st, "ct_text_block", map[string]any{
		"ct_content": joinLines(items),
		"items":      entries,
	})
}

func (e OxygenEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	return e.component(st, "ct_text_block", map[string]any{
		"ct_content": blockText(b),
		"tag":        "blockquote",
	})
}

func (e OxygenEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return e.component(st, "ct_video", map[string]any{"url": mediaURL(b)})
}

func (e OxygenEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	return e.component(st, "ct_code_block", map[string]any{
		"code": fmt.Sprintf(`<iframe src="%s"></iframe>`, style.EscapeHTML(mediaURL(b))),
	})
}

func (e OxygenEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return e.component(st, "ct_div_block", map[string]any{"role": "separator"})
}

func (e OxygenEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	return e.component(st, "ct_code_block", map[string]any{"code": b.RawInnerContent})
}

func (e OxygenEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return e.component(st, "ct_code_block", map[string]any{"code": b.RawInnerContent})
}

func (e OxygenEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	name := "ct_section"
	if kind == core.KindColumn {
		name = "ct_div_block"
	}
	options := map[string]any{}
	if raw := containerRaw(b, children); raw != "" {
		options["ct_content"] = raw
	}
	node := e.component(st, name, options)
	node["children"] = children
	return node
}

func (OxygenEmitter) Assemble(top []any, st *State) any {
	return map[string]any{"children": top}
}

// joinLines renders list items as newline-separated text content.
func joinLines(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += "\n"
		}
		out += it
	}
	return out
}
