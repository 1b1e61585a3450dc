// Package core defines the shared data model and stage interfaces for
// BlockBridge. Each stage of the conversion engine is a clean, testable
// interface; the types here are created fresh per conversion and never
// mutated after construction.
package core

import "context"

// DefaultNamespace is assumed when a block marker carries no namespace
// prefix (e.g. <!-- separator /--> parses as core:separator).
const DefaultNamespace = "core"

// ContentBlock is a typed, attributed unit of content parsed from the
// comment-delimited marker grammar. Trees are built bottom-up and are
// read-only afterwards.
type ContentBlock struct {
	Namespace       string          `json:"namespace"`
	Name            string          `json:"name"`
	Attributes      map[string]any  `json:"attributes"`
	RawInnerContent string          `json:"raw_inner_content,omitempty"`
	Children        []*ContentBlock `json:"children,omitempty"`
}

// FullName returns the namespaced block name, e.g. "wp:heading".
func (b *ContentBlock) FullName() string {
	ns := b.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	return ns + ":" + b.Name
}

// Attr returns a string attribute, or def when absent or not a string.
func (b *ContentBlock) Attr(key, def string) string {
	if v, ok := b.Attributes[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// AttrInt returns a numeric attribute as int, or def when absent.
// JSON numbers decode as float64, so both forms are accepted.
func (b *ContentBlock) AttrInt(key string, def int) int {
	switch v := b.Attributes[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Box is the layout rectangle of a rendered element, in CSS pixels.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ElementSnapshot is one rendered-DOM element as captured by the external
// page-capture collaborator: tag, visible text, attributes, geometry and a
// subset of computed style. Snapshots form a flat ordered sequence; any
// row/column grouping is computed by the normalizer, never stored.
type ElementSnapshot struct {
	Tag        string            `json:"tag"`
	Text       string            `json:"text"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Box        Box               `json:"box"`
	Style      map[string]string `json:"style,omitempty"`
	Visible    bool              `json:"visible"`
}

// OutputFormat is the serialization family a builder emits.
type OutputFormat string

const (
	FormatJSON      OutputFormat = "json"
	FormatHTML      OutputFormat = "html"
	FormatShortcode OutputFormat = "shortcode"
)

// ConversionMethod records which entry point produced an output.
type ConversionMethod string

const (
	// MethodNative means the output came from parsed block markup.
	MethodNative ConversionMethod = "native"
	// MethodFallback means the output was reconstructed from DOM snapshots.
	MethodFallback ConversionMethod = "fallback"
)

// OutputMetadata describes a single conversion run.
type OutputMetadata struct {
	WidgetCount      int              `json:"widget_count"`
	SectionCount     int              `json:"section_count"`
	ConversionMethod ConversionMethod `json:"conversion_method"`
	BuildTimeMs      int64            `json:"build_time_ms"`
}

// BuilderOutput is the result of one converter invocation. Content is a
// string for html/shortcode formats and an object graph for json.
type BuilderOutput struct {
	Format   OutputFormat   `json:"format"`
	Content  any            `json:"content"`
	Metadata OutputMetadata `json:"metadata"`
}

// ExportResult wraps a BuilderOutput with the dispatch outcome. A failed
// conversion carries Error and a nil Output; no exception crosses the
// dispatcher boundary.
type ExportResult struct {
	Builder string         `json:"builder"`
	Success bool           `json:"success"`
	Output  *BuilderOutput `json:"output,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// BuilderConverter converts a block tree, or a normalized snapshot
// sequence, into one target builder's output schema. Converters are
// stateless across calls: concurrent invocations must not share counters.
type BuilderConverter interface {
	ConvertTree(blocks []*ContentBlock) (*BuilderOutput, error)
	ConvertSnapshot(elements []*ElementSnapshot) (*BuilderOutput, error)
}

// FetchResult holds the raw HTML and response metadata from a page capture.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL. It is the engine's only external
// collaborator; parsing and conversion themselves perform no I/O.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
