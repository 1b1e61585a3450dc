package convert

import (
	"fmt"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// ElementorEmitter produces the Elementor template object graph:
// sections contain columns contain widgets, every element carrying a
// per-conversion id.
type ElementorEmitter struct{}

func (ElementorEmitter) Name() string              { return "elementor" }
func (ElementorEmitter) Format() core.OutputFormat { return core.FormatJSON }

// elID formats a per-call element id.
func elID(st *State) string {
	return fmt.Sprintf("el%04x", st.NextID())
}

func (e ElementorEmitter) widget(st *State, widgetType string, settings map[string]any) map[string]any {
	return map[string]any{
		"id":         elID(st),
		"elType":     "widget",
		"widgetType": widgetType,
		"settings":   settings,
	}
}

func (e ElementorEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	settings := map[string]any{
		"title":       blockText(b),
		"header_size": fmt.Sprintf("h%d", headingLevel(b)),
		"align":       blockAlign(b),
	}
	if c := style.Color(b.Attr("textColor", "")); c != "" {
		settings["title_color"] = c
	}
	return e.widget(st, "heading", settings)
}

func (e ElementorEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	settings := map[string]any{
		"editor": "<p>" + style.EscapeHTML(blockText(b)) + "</p>",
		"align":  blockAlign(b),
	}
	return e.widget(st, "text-editor", settings)
}

func (e ElementorEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	return e.widget(st, "image", map[string]any{
		"image": map[string]any{"url": mediaURL(b), "alt": b.Attr("alt", "")},
	})
}

func (e ElementorEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	return e.widget(st, "button", map[string]any{
		"text": blockText(b),
		"link": map[string]any{"url": mediaURL(b)},
	})
}

func (e ElementorEmitter) EmitList(b *core.ContentBlock, st *State) any {
	items := listItems(b)
	list := make([]any, 0, len(items))
	for _, it := range items {
		list = append(list, map[string]any{"text": it})
	}
	return e.widget(st, "icon-list", map[string]any{
		"icon_list": list,
		"view":      "traditional",
	})
}

func (e ElementorEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	return e.widget(st, "blockquote", map[string]any{
		"blockquote_content": blockText(b),
	})
}

func (e ElementorEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return e.widget(st, "video", map[string]any{
		"video_type":     "hosted",
		"hosted_url":     map[string]any{"url": mediaURL(b)},
		"show_play_icon": "yes",
	})
}

func (e ElementorEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	return e.widget(st, "html", map[string]any{
		"html": fmt.Sprintf(`<iframe src="%s"></iframe>`, style.EscapeHTML(mediaURL(b))),
	})
}

func (e ElementorEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return e.widget(st, "divider", map[string]any{"style": "solid"})
}

func (e ElementorEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	return e.widget(st, "html", map[string]any{"html": b.RawInnerContent})
}

func (e ElementorEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return e.widget(st, "html", map[string]any{"html": b.RawInnerContent})
}

func (e ElementorEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	elType := "section"
	settings := map[string]any{}
	switch kind {
	case core.KindColumns:
		settings["structure"] = fmt.Sprintf("%d0", len(children))
	case core.KindColumn:
		elType = "column"
		settings["_column_size"] = columnSize(b)
	}
	if raw := containerRaw(b, children); raw != "" {
		settings["html"] = raw
	}
	return map[string]any{
		"id":       elID(st),
		"elType":   elType,
		"settings": settings,
		"elements": children,
	}
}

func (ElementorEmitter) Assemble(top []any, st *State) any {
	return map[string]any{
		"version": "0.4",
		"type":    "page",
		"content": top,
	}
}

// columnSize derives the Elementor column width percentage from an
// explicit width attribute, defaulting to an even split marker.
func columnSize(b *core.ContentBlock) int {
	if w := b.AttrInt("width", 0); w > 0 && w <= 100 {
		return w
	}
	return 100
}
