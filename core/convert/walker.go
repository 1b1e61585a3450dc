// Package convert implements the builder converter family. One generic
// tree walker drives every target; each target supplies a small Emitter
// that renders individual block kinds in its own schema. The Emitter
// interface is the closed block-kind catalog: adding a kind means adding
// a method here, which refuses to compile until all eleven emitters
// handle it.
package convert

import (
	"fmt"
	"time"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/snapshot"
)

// State carries all per-conversion mutable state. It is created fresh for
// every convert call and threaded through the walk, so concurrent or
// interleaved calls to the same converter never share ids or counters.
type State struct {
	Method core.ConversionMethod

	ids     int
	widgets int

	// Scratch is per-call storage for emitters whose target schema is a
	// flat node registry rather than a nested tree (beaver, bricks).
	Scratch map[string]any
}

// NextID returns the next id in this conversion's sequence, starting at 1.
func (s *State) NextID() int {
	s.ids++
	return s.ids
}

// Emitter renders single blocks into one target's schema. String-valued
// targets (html, shortcode) return strings; json targets return object
// graphs. Emitters must be stateless: anything per-call goes in State.
type Emitter interface {
	Name() string
	Format() core.OutputFormat

	EmitHeading(b *core.ContentBlock, st *State) any
	EmitParagraph(b *core.ContentBlock, st *State) any
	EmitImage(b *core.ContentBlock, st *State) any
	EmitButton(b *core.ContentBlock, st *State) any
	EmitList(b *core.ContentBlock, st *State) any
	EmitQuote(b *core.ContentBlock, st *State) any
	EmitVideo(b *core.ContentBlock, st *State) any
	EmitEmbed(b *core.ContentBlock, st *State) any
	EmitSeparator(b *core.ContentBlock, st *State) any
	EmitTable(b *core.ContentBlock, st *State) any

	// EmitRaw is the least-structured passthrough primitive. Unknown
	// block kinds land here; they are never silently dropped.
	EmitRaw(b *core.ContentBlock, st *State) any

	// EmitContainer re-wraps already-converted children in the target's
	// container primitive. len(children) always equals the input node's
	// child count.
	EmitContainer(b *core.ContentBlock, kind core.BlockKind, children []any, st *State) any

	// Assemble combines the converted top-level nodes into the final
	// output content.
	Assemble(top []any, st *State) any
}

// Converter drives an Emitter over both input paths. It satisfies
// core.BuilderConverter and holds no mutable state.
type Converter struct {
	emitter  Emitter
	snapOpts snapshot.Options
}

// New wraps an emitter in the generic walker.
func New(e Emitter) *Converter {
	return &Converter{emitter: e}
}

// NewWithSnapshotOptions wraps an emitter with tuned snapshot heuristics.
func NewWithSnapshotOptions(e Emitter, opts snapshot.Options) *Converter {
	return &Converter{emitter: e, snapOpts: opts}
}

// Name returns the emitter's canonical builder name.
func (c *Converter) Name() string { return c.emitter.Name() }

// Format returns the emitter's output format.
func (c *Converter) Format() core.OutputFormat { return c.emitter.Format() }

// ConvertTree converts parsed block markup.
func (c *Converter) ConvertTree(blocks []*core.ContentBlock) (*core.BuilderOutput, error) {
	return c.run(blocks, core.MethodNative)
}

// ConvertSnapshot normalizes DOM element snapshots into a synthetic tree
// and converts it through the same walk.
func (c *Converter) ConvertSnapshot(elements []*core.ElementSnapshot) (*core.BuilderOutput, error) {
	blocks := snapshot.BuildTree(elements, c.snapOpts)
	return c.run(blocks, core.MethodFallback)
}

func (c *Converter) run(blocks []*core.ContentBlock, method core.ConversionMethod) (*core.BuilderOutput, error) {
	start := time.Now()
	st := &State{Method: method, Scratch: map[string]any{}}

	top := make([]any, 0, len(blocks))
	for _, b := range blocks {
		top = append(top, c.emitNode(b, st))
	}
	content := c.emitter.Assemble(top, st)

	return &core.BuilderOutput{
		Format:  c.emitter.Format(),
		Content: content,
		Metadata: core.OutputMetadata{
			WidgetCount:      st.widgets,
			SectionCount:     len(blocks),
			ConversionMethod: method,
			BuildTimeMs:      time.Since(start).Milliseconds(),
		},
	}, nil
}

// emitNode dispatches one block to the emitter. Containers convert their
// children first, bottom-up, then re-wrap them; the output child count
// always matches the input child count.
func (c *Converter) emitNode(b *core.ContentBlock, st *State) any {
	st.widgets++

	kind := core.KindOf(b)
	if kind.IsContainer() {
		children := make([]any, 0, len(b.Children))
		for _, child := range b.Children {
			children = append(children, c.emitNode(child, st))
		}
		return c.emitter.EmitContainer(b, kind, children, st)
	}

	switch kind {
	case core.KindHeading:
		return c.emitter.EmitHeading(b, st)
	case core.KindParagraph:
		return c.emitter.EmitParagraph(b, st)
	case core.KindImage:
		return c.emitter.EmitImage(b, st)
	case core.KindButton:
		return c.emitter.EmitButton(b, st)
	case core.KindList:
		return c.emitter.EmitList(b, st)
	case core.KindQuote:
		return c.emitter.EmitQuote(b, st)
	case core.KindVideo:
		return c.emitter.EmitVideo(b, st)
	case core.KindEmbed:
		return c.emitter.EmitEmbed(b, st)
	case core.KindSeparator:
		return c.emitter.EmitSeparator(b, st)
	case core.KindTable:
		return c.emitter.EmitTable(b, st)
	case core.KindRaw:
		return c.emitter.EmitRaw(b, st)
	default:
		return c.emitter.EmitRaw(b, st)
	}
}

// asString renders an emitted value for string-valued targets. JSON
// emitters never call this; it exists so html/shortcode emitters can
// join container children safely even if a child came out as a non-string.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
