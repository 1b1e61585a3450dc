package core

import "strings"

// BlockKind is the closed catalog of block kinds every converter supports.
// Unknown block names resolve to KindRaw, which converters must pass
// through as their least-structured primitive rather than drop.
type BlockKind string

const (
	KindHeading   BlockKind = "heading"
	KindParagraph BlockKind = "paragraph"
	KindImage     BlockKind = "image"
	KindButton    BlockKind = "button"
	KindList      BlockKind = "list"
	KindQuote     BlockKind = "quote"
	KindVideo     BlockKind = "video"
	KindEmbed     BlockKind = "embed"
	KindColumns   BlockKind = "columns"
	KindColumn    BlockKind = "column"
	KindGroup     BlockKind = "group"
	KindSeparator BlockKind = "separator"
	KindTable     BlockKind = "table"
	KindRaw       BlockKind = "raw"
)

// kindNames maps bare block names onto kinds. Namespaces are deliberately
// ignored here: wp:heading, core:heading and kadence:heading all mean the
// same structural unit.
var kindNames = map[string]BlockKind{
	"heading":    KindHeading,
	"paragraph":  KindParagraph,
	"text":       KindParagraph,
	"image":      KindImage,
	"button":     KindButton,
	"buttons":    KindGroup,
	"list":       KindList,
	"quote":      KindQuote,
	"pullquote":  KindQuote,
	"video":      KindVideo,
	"embed":      KindEmbed,
	"html":       KindRaw,
	"columns":    KindColumns,
	"column":     KindColumn,
	"group":      KindGroup,
	"cover":      KindGroup,
	"section":    KindGroup,
	"separator":  KindSeparator,
	"spacer":     KindSeparator,
	"table":      KindTable,
	"gallery":    KindGroup,
	"media-text": KindGroup,
}

// KindOf resolves a block to its catalog kind. Block names may carry a
// slash-qualified form (e.g. "kadence/rowlayout"); only the final segment
// is matched.
func KindOf(b *ContentBlock) BlockKind {
	name := b.Name
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if k, ok := kindNames[strings.ToLower(name)]; ok {
		return k
	}
	return KindRaw
}

// IsContainer reports whether the kind recurses into children.
func (k BlockKind) IsContainer() bool {
	switch k {
	case KindColumns, KindColumn, KindGroup:
		return true
	}
	return false
}
