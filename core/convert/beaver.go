package convert

import (
	"fmt"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

// BeaverEmitter produces Beaver Builder's flat node registry: every
// module, column and row is one entry in a map keyed by node id, linked
// by parent references. The registry for the call in flight lives in
// State.Scratch, so concurrent conversions never share it.
type BeaverEmitter struct{}

func (BeaverEmitter) Name() string              { return "beaver" }
func (BeaverEmitter) Format() core.OutputFormat { return core.FormatJSON }

// beaverNodes returns the per-call node list, creating it on first use.
func beaverNodes(st *State) *[]map[string]any {
	if v, ok := st.Scratch["beaver_nodes"].(*[]map[string]any); ok {
		return v
	}
	nodes := &[]map[string]any{}
	st.Scratch["beaver_nodes"] = nodes
	return nodes
}

// addNode registers a node and returns its id, which is what flows back
// up the walk as the emitted value.
func (e BeaverEmitter) addNode(st *State, typ, moduleType string, settings map[string]any) string {
	id := fmt.Sprintf("node%04d", st.NextID())
	node := map[string]any{
		"node":     id,
		"type":     typ,
		"parent":   nil,
		"position": 0,
		"settings": settings,
	}
	if moduleType != "" {
		node["settings"].(map[string]any)["type"] = moduleType
	}
	nodes := beaverNodes(st)
	*nodes = append(*nodes, node)
	return id
}

// adopt links already-registered children under a parent id.
func (e BeaverEmitter) adopt(st *State, parent string, children []any) {
	nodes := beaverNodes(st)
	for pos, child := range children {
		id := asString(child)
		for _, n := range *nodes {
			if n["node"] == id {
				n["parent"] = parent
				n["position"] = pos
				break
			}
		}
	}
}

func (e BeaverEmitter) EmitHeading(b *core.ContentBlock, st *State) any {
	settings := map[string]any{
		"heading":   blockText(b),
		"tag":       fmt.Sprintf("h%d", headingLevel(b)),
		"alignment": blockAlign(b),
	}
	if c := style.Color(b.Attr("textColor", "")); c != "" {
		settings["color"] = c
	}
	return e.addNode(st, "module", "heading", settings)
}

func (e BeaverEmitter) EmitParagraph(b *core.ContentBlock, st *State) any {
	return e.addNode(st, "module", "rich-text", map[string]any{
		"text": "<p>" + style.EscapeHTML(blockText(b)) + "</p>",
	})
}

func (e BeaverEmitter) EmitImage(b *core.ContentBlock, st *State) any {
	return e.addNode(st, "module", "photo", map[string]any{
		"photo_src": mediaURL(b),
		"alt":       b.Attr("alt", ""),
	})
}

func (e BeaverEmitter) EmitButton(b *core.ContentBlock, st *State) any {
	return e.addNode(st, "module", "button", map[string]any{
		"text": blockText(b),
		"link": mediaURL(b),
	})
}

func (e BeaverEmitter) EmitList(b *core.ContentBlock, st *State) any {
	tag := "ul"
	if isOrdered(b) {
		tag = "ol"
	}
	text := "<" + tag + ">"
	for _, it := range listItems(b) {
		text += "<li>" + style.EscapeHTML(it) + "</li>"
	}
	text += "</" + tag + ">"
	return e.addNode(st, "module", "rich-text", map[string]any{"text": text})
}

func (e BeaverEmitter) EmitQuote(b *core.ContentBlock, st *State) any {
	return e.addNode(st, "module", "rich-text", map[string]any{
		"text": "<blockquote>" + style.EscapeHTML(blockText(b)) + "</blockquote>",
	})
}

func (e BeaverEmitter) EmitVideo(b *core.ContentBlock, st *State) any {
	return e.addNode(st, "module", "video", map[string]any{"video": mediaURL(b)})
}

func (e BeaverEmitter) EmitEmbed(b *core.ContentBlock, st *State) any {
	return e.addNode(st, "module", "html", map[string]any{
		"html": fmt.Sprintf(`<iframe src="%s"></iframe>`, style.EscapeHTML(mediaURL(b))),
	})
}

func (e BeaverEmitter) EmitSeparator(b *core.ContentBlock, st *State) any {
	return e.addNode(st, "module", "separator", map[string]any{})
}

func (e BeaverEmitter) EmitTable(b *core.ContentBlock, st *State) any {
	return e.addNode(st, "module", "html", map[string]any{"html": b.RawInnerContent})
}

func (e BeaverEmitter) EmitRaw(b *core.ContentBlock, st *State) any {
	return e.addNode(st, "module", "html", map[string]any{"html": b.RawInnerContent})
}

func (e BeaverEmitter) EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any {
	typ := "row"
	if kind == core.KindColumn {
		typ = "column"
	}
	settings := map[string]any{}
	if raw := containerRaw(b, children); raw != "" {
		settings["html"] = raw
	}
	id := e.addNode(st, typ, "", settings)
	e.adopt(st, id, children)
	return id
}

func (e BeaverEmitter) Assemble(top []any, st *State) any {
	byID := map[string]any{}
	for _, n := range *beaverNodes(st) {
		byID[asString(n["node"])] = n
	}
	rootIDs := make([]any, 0, len(top))
	for _, t := range top {
		rootIDs = append(rootIDs, asString(t))
	}
	return map[string]any{
		"nodes": byID,
		"roots": rootIDs,
	}
}
