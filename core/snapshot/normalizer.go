// Package snapshot reconstructs a block-like tree from rendered-DOM
// element snapshots when no native block markup exists. The grouping of
// flat elements into rows and columns is a deliberately approximate
// layout-inference heuristic: thresholds are tunable, and the result is
// best-effort, not a guarantee of visual accuracy.
package snapshot

import (
	"sort"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/style"
)

const (
	// DefaultRowTolerance is the vertical bucket size, in pixels, used
	// to decide that two elements sit on the same visual row.
	DefaultRowTolerance = 50.0
	// DefaultMaxElements caps how many visible elements are considered,
	// bounding work on pathological inputs.
	DefaultMaxElements = 200
)

// Options tune the normalizer heuristics.
type Options struct {
	// RowTolerance is the vertical bucketing tolerance in pixels.
	// Zero or negative means DefaultRowTolerance.
	RowTolerance float64
	// MaxElements caps the number of visible elements considered.
	// Zero or negative means DefaultMaxElements.
	MaxElements int
}

func (o Options) rowTolerance() float64 {
	if o.RowTolerance <= 0 {
		return DefaultRowTolerance
	}
	return o.RowTolerance
}

func (o Options) maxElements() int {
	if o.MaxElements <= 0 {
		return DefaultMaxElements
	}
	return o.MaxElements
}

// FilterVisible keeps elements that actually render: non-zero size, not
// display:none, not visibility:hidden, not fully transparent.
func FilterVisible(elements []*core.ElementSnapshot) []*core.ElementSnapshot {
	var visible []*core.ElementSnapshot
	for _, el := range elements {
		if el == nil || !el.Visible {
			continue
		}
		if el.Box.Width <= 0 || el.Box.Height <= 0 {
			continue
		}
		if el.Style["display"] == "none" || el.Style["visibility"] == "hidden" {
			continue
		}
		if op := el.Style["opacity"]; op == "0" || op == "0.0" {
			continue
		}
		visible = append(visible, el)
	}
	return visible
}

// DetectColumns groups elements into visual rows by vertical position,
// bucketed at the row tolerance, then sorts each row left to right. The
// row with the most members defines the canonical column split; a tie
// resolves to a single column.
func DetectColumns(elements []*core.ElementSnapshot, tolerance float64) [][]*core.ElementSnapshot {
	if tolerance <= 0 {
		tolerance = DefaultRowTolerance
	}
	if len(elements) == 0 {
		return nil
	}

	sorted := make([]*core.ElementSnapshot, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Box.Y < sorted[j].Box.Y
	})

	var rows [][]*core.ElementSnapshot
	var current []*core.ElementSnapshot
	rowY := 0.0
	for _, el := range sorted {
		if len(current) == 0 || el.Box.Y-rowY <= tolerance {
			if len(current) == 0 {
				rowY = el.Box.Y
			}
			current = append(current, el)
			continue
		}
		rows = append(rows, current)
		current = []*core.ElementSnapshot{el}
		rowY = el.Box.Y
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].Box.X < row[j].Box.X
		})
	}
	return rows
}

// canonicalSplit returns the column count implied by the widest row. A
// tie between two different widest rows resolves to a single column.
func canonicalSplit(rows [][]*core.ElementSnapshot) int {
	best, count := 1, 0
	for _, row := range rows {
		switch {
		case len(row) > best:
			best = len(row)
			count = 1
		case len(row) == best:
			count++
		}
	}
	if best > 1 && count > 1 {
		return 1
	}
	return best
}

// BuildTree normalizes a flat snapshot sequence into a synthetic block
// forest that satisfies the same converter contract as parsed markup.
// Rows matching the canonical column split become columns containers;
// everything else appends in document order.
func BuildTree(elements []*core.ElementSnapshot, opts Options) []*core.ContentBlock {
	visible := FilterVisible(elements)
	if max := opts.maxElements(); len(visible) > max {
		visible = visible[:max]
	}
	if len(visible) == 0 {
		return nil
	}

	rows := DetectColumns(visible, opts.rowTolerance())
	split := canonicalSplit(rows)

	var blocks []*core.ContentBlock
	for _, row := range rows {
		if split > 1 && len(row) == split {
			columns := &core.ContentBlock{
				Namespace:  core.DefaultNamespace,
				Name:       "columns",
				Attributes: map[string]any{},
			}
			for _, el := range row {
				column := &core.ContentBlock{
					Namespace:  core.DefaultNamespace,
					Name:       "column",
					Attributes: map[string]any{},
					Children:   []*core.ContentBlock{elementToBlock(el)},
				}
				columns.Children = append(columns.Children, column)
			}
			blocks = append(blocks, columns)
			continue
		}
		for _, el := range row {
			blocks = append(blocks, elementToBlock(el))
		}
	}
	return blocks
}

// tagKinds maps snapshot tags onto block names. Tags outside the map
// become raw text blocks so no captured content is dropped.
var tagKinds = map[string]string{
	"h1": "heading", "h2": "heading", "h3": "heading",
	"h4": "heading", "h5": "heading", "h6": "heading",
	"p": "paragraph", "img": "image", "a": "button",
	"button": "button", "ul": "list", "ol": "list",
	"blockquote": "quote", "video": "video", "iframe": "embed",
	"hr": "separator", "table": "table",
}

// elementToBlock maps one snapshot element onto a synthetic block,
// folding its computed style into normalized block attributes so that
// converters treat both input paths identically.
func elementToBlock(el *core.ElementSnapshot) *core.ContentBlock {
	tag := strings.ToLower(el.Tag)
	name, ok := tagKinds[tag]
	if !ok {
		name = "html"
	}

	attrs := map[string]any{}
	block := &core.ContentBlock{
		Namespace:       core.DefaultNamespace,
		Name:            name,
		Attributes:      attrs,
		RawInnerContent: elementText(el),
	}

	switch name {
	case "heading":
		attrs["level"] = headingLevel(tag)
	case "image":
		if src := el.Attributes["src"]; src != "" {
			attrs["url"] = src
		}
		if alt := el.Attributes["alt"]; alt != "" {
			attrs["alt"] = alt
		}
	case "button":
		if href := el.Attributes["href"]; href != "" {
			attrs["url"] = href
		}
	case "list":
		attrs["ordered"] = tag == "ol"
		attrs["items"] = listItems(el)
	case "video", "embed":
		if src := el.Attributes["src"]; src != "" {
			attrs["url"] = src
		}
	}

	if align := style.Alignment("", el.Style["text-align"]); align != "left" {
		attrs["align"] = align
	}
	if c := style.Color(el.Style["color"]); c != "" {
		attrs["textColor"] = c
	}
	if c := style.Color(el.Style["background-color"]); c != "" {
		attrs["backgroundColor"] = c
	}
	if pad := el.Style["padding"]; pad != "" {
		if sp := style.ExpandSpacing(pad); !sp.IsZero() {
			attrs["padding"] = map[string]any{
				"top": sp.Top, "right": sp.Right,
				"bottom": sp.Bottom, "left": sp.Left,
			}
		}
	}

	return block
}

// elementText returns the element's clean text content. Rich-text
// captures carry inner HTML in the "html" attribute; that is reduced to
// Markdown-flavored plain text rather than trusted as-is.
func elementText(el *core.ElementSnapshot) string {
	if html := el.Attributes["html"]; html != "" {
		if md, err := htmltomarkdown.ConvertString(html); err == nil {
			return strings.TrimSpace(md)
		}
	}
	return strings.TrimSpace(el.Text)
}

// listItems splits a list element's content into individual items.
func listItems(el *core.ElementSnapshot) []any {
	var items []any
	for _, line := range strings.Split(elementText(el), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// headingLevel extracts the numeric level from an hN tag.
func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 2
}
