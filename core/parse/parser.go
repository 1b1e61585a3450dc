// Package parse implements the block parser. It turns a raw content
// string carrying comment-delimited block markers into an ordered forest
// of core.ContentBlock nodes.
//
// The marker grammar is:
//
//	<!-- ns:name {json-attrs}? -->  ...inner...  <!-- /ns:name -->
//	<!-- ns:name {json-attrs}? /-->
//
// The namespace is optional and defaults to "core". The attribute blob is
// optional; an unparsable blob resolves to {} and parsing continues.
// Nesting is tracked by namespace/name matching, not by nearest closing
// comment, so sibling blocks of the same name inside a parent never close
// the parent early.
package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/akshaynair/blockbridge/core"
)

// DefaultMaxDepth bounds recursion into block inner content. Blocks
// nested deeper remain as unparsed inner content of their deepest
// recognized ancestor.
const DefaultMaxDepth = 10

// Options control a single Parse call.
type Options struct {
	// MaxDepth caps the parsed tree depth. Zero or negative means
	// DefaultMaxDepth.
	MaxDepth int
	// BlockTypes is an allow-list of bare block names. When non-empty,
	// blocks outside the list are excluded together with their subtree;
	// their children are never promoted to the parent level.
	BlockTypes []string
	// SkipEmpty drops leaf blocks that carry no inner content and no
	// attributes.
	SkipEmpty bool
}

// markerRegex matches one block marker. Capture groups:
// 1 closer slash, 2 namespace, 3 name, 4 attribute JSON, 5 self-closing slash.
var markerRegex = regexp.MustCompile(`(?s)<!--\s+(/)?(?:([a-zA-Z][\w-]*):)?([a-zA-Z][\w/-]*)(\s+\{.*?\})?\s*(/)?-->`)

// marker is one matched comment delimiter inside a content region.
type marker struct {
	start, end  int
	ns, name    string
	attrsRaw    string
	closing     bool
	selfClosing bool
}

// Parse turns content into an ordered forest of blocks. Empty input and
// input without any markers both yield an empty (nil) forest; the parser
// never fabricates a wrapper node for unmarked content. Parse never
// returns an error: malformed attribute JSON and unmatched markers are
// recovered locally.
func Parse(content string, opts Options) []*core.ContentBlock {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var allow map[string]bool
	if len(opts.BlockTypes) > 0 {
		allow = make(map[string]bool, len(opts.BlockTypes))
		for _, t := range opts.BlockTypes {
			allow[strings.ToLower(t)] = true
		}
	}

	return parseRegion(content, 1, maxDepth, allow, opts.SkipEmpty)
}

// parseRegion parses one content region at the given depth (the root
// region is depth 1) and returns the blocks found at this level.
func parseRegion(content string, depth, maxDepth int, allow map[string]bool, skipEmpty bool) []*core.ContentBlock {
	markers := findMarkers(content)
	if len(markers) == 0 {
		return nil
	}

	var blocks []*core.ContentBlock
	for i := 0; i < len(markers); {
		m := markers[i]
		if m.closing {
			// Stray closer with no matching opener: best-effort
			// recovery is to skip it.
			i++
			continue
		}

		var block *core.ContentBlock
		if m.selfClosing {
			block = &core.ContentBlock{
				Namespace:  m.ns,
				Name:       m.name,
				Attributes: parseAttributes(m.attrsRaw),
			}
			i++
		} else {
			closer := findCloser(markers, i)
			var inner string
			if closer == -1 {
				// Unclosed block: everything to the end of the
				// region is its inner content.
				inner = content[m.end:]
				i = len(markers)
			} else {
				inner = content[m.end:markers[closer].start]
				i = closer + 1
			}
			block = buildBlock(m, inner, depth, maxDepth, allow, skipEmpty)
		}

		if allow != nil && !allow[strings.ToLower(m.name)] {
			continue
		}
		if skipEmpty && isEmptyLeaf(block) {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// buildBlock assembles a non-self-closing block, recursing into its inner
// content while depth allows. At maxDepth the inner content is kept
// verbatim, unparsed markers included, so deep structure is truncated but
// never dropped.
func buildBlock(m marker, inner string, depth, maxDepth int, allow map[string]bool, skipEmpty bool) *core.ContentBlock {
	block := &core.ContentBlock{
		Namespace:  m.ns,
		Name:       m.name,
		Attributes: parseAttributes(m.attrsRaw),
	}

	if depth >= maxDepth {
		block.RawInnerContent = strings.TrimSpace(inner)
		return block
	}

	block.Children = parseRegion(inner, depth+1, maxDepth, allow, skipEmpty)
	block.RawInnerContent = strings.TrimSpace(stripChildRegions(inner))
	return block
}

// findCloser locates the marker closing markers[open], tracking nested
// blocks of the same namespace and name. Returns -1 when the block is
// never closed.
func findCloser(markers []marker, open int) int {
	o := markers[open]
	nesting := 1
	for j := open + 1; j < len(markers); j++ {
		m := markers[j]
		if m.ns != o.ns || m.name != o.name {
			continue
		}
		if m.closing {
			nesting--
			if nesting == 0 {
				return j
			}
		} else if !m.selfClosing {
			nesting++
		}
	}
	return -1
}

// stripChildRegions removes complete child block regions from inner
// content, leaving only the text that belongs to the block itself.
func stripChildRegions(inner string) string {
	markers := findMarkers(inner)
	if len(markers) == 0 {
		return inner
	}

	var b strings.Builder
	pos := 0
	for i := 0; i < len(markers); {
		m := markers[i]
		if m.closing {
			i++
			continue
		}
		if m.start >= pos {
			b.WriteString(inner[pos:m.start])
		}
		if m.selfClosing {
			pos = m.end
			i++
			continue
		}
		closer := findCloser(markers, i)
		if closer == -1 {
			pos = len(inner)
			break
		}
		pos = markers[closer].end
		i = closer + 1
	}
	if pos < len(inner) {
		b.WriteString(inner[pos:])
	}
	return b.String()
}

// findMarkers scans a region for all block markers.
func findMarkers(content string) []marker {
	matches := markerRegex.FindAllStringSubmatchIndex(content, -1)
	markers := make([]marker, 0, len(matches))
	for _, idx := range matches {
		m := marker{
			start:       idx[0],
			end:         idx[1],
			closing:     idx[2] != -1,
			selfClosing: idx[10] != -1,
			ns:          core.DefaultNamespace,
			name:        content[idx[6]:idx[7]],
		}
		if idx[4] != -1 {
			m.ns = content[idx[4]:idx[5]]
		}
		if idx[8] != -1 {
			m.attrsRaw = strings.TrimSpace(content[idx[8]:idx[9]])
		}
		markers = append(markers, m)
	}
	return markers
}

// parseAttributes decodes the optional attribute JSON blob. Malformed or
// missing JSON resolves to an empty map, never nil and never an error.
func parseAttributes(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var attrs map[string]any
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil || attrs == nil {
		return map[string]any{}
	}
	return attrs
}

// isEmptyLeaf reports whether a block has no children, no inner content
// and no attributes.
func isEmptyLeaf(b *core.ContentBlock) bool {
	return len(b.Children) == 0 &&
		strings.TrimSpace(b.RawInnerContent) == "" &&
		len(b.Attributes) == 0
}
