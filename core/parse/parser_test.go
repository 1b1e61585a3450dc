package parse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshaynair/blockbridge/core"
)

func TestParse_Basics(t *testing.T) {
	t.Run("Should return empty forest for empty input", func(t *testing.T) {
		assert.Empty(t, Parse("", Options{}))
		assert.Empty(t, Parse("   \n\t ", Options{}))
	})

	t.Run("Should return empty forest when no markers exist", func(t *testing.T) {
		blocks := Parse("<div><p>plain html, no markers</p></div>", Options{})
		assert.Empty(t, blocks, "parser must not fabricate a wrapper node")
	})

	t.Run("Should parse a self-closing block as an empty leaf", func(t *testing.T) {
		blocks := Parse("<!-- wp:separator /-->", Options{})
		require.Len(t, blocks, 1)
		assert.Equal(t, "wp", blocks[0].Namespace)
		assert.Equal(t, "separator", blocks[0].Name)
		assert.Empty(t, blocks[0].Children)
		assert.Empty(t, blocks[0].RawInnerContent)
		assert.NotNil(t, blocks[0].Attributes)
	})

	t.Run("Should default the namespace to core", func(t *testing.T) {
		blocks := Parse("<!-- separator /-->", Options{})
		require.Len(t, blocks, 1)
		assert.Equal(t, core.DefaultNamespace, blocks[0].Namespace)
	})

	t.Run("Should keep inner content on leaf blocks", func(t *testing.T) {
		blocks := Parse(`<!-- wp:heading {"level":2} --><h2>A</h2><!-- /wp:heading -->`, Options{})
		require.Len(t, blocks, 1)
		assert.Equal(t, "<h2>A</h2>", blocks[0].RawInnerContent)
		assert.Equal(t, 2, blocks[0].AttrInt("level", 0))
	})
}

func TestParse_Attributes(t *testing.T) {
	t.Run("Should resolve malformed attribute JSON to an empty map", func(t *testing.T) {
		blocks := Parse("<!-- wp:heading {not valid json} -->x<!-- /wp:heading -->", Options{})
		require.Len(t, blocks, 1)
		require.NotNil(t, blocks[0].Attributes)
		assert.Empty(t, blocks[0].Attributes)
	})

	t.Run("Should parse valid attribute JSON", func(t *testing.T) {
		blocks := Parse(`<!-- wp:button {"url":"https://x.dev","align":"center"} /-->`, Options{})
		require.Len(t, blocks, 1)
		assert.Equal(t, "https://x.dev", blocks[0].Attr("url", ""))
		assert.Equal(t, "center", blocks[0].Attr("align", ""))
	})

	t.Run("Should parse nested attribute objects", func(t *testing.T) {
		blocks := Parse(`<!-- wp:group {"style":{"color":{"background":"#fff"}}} -->x<!-- /wp:group -->`, Options{})
		require.Len(t, blocks, 1)
		assert.Contains(t, blocks[0].Attributes, "style")
	})
}

func TestParse_Nesting(t *testing.T) {
	columnsDoc := `<!-- wp:columns --><!-- wp:column --><!-- wp:heading {"level":2} --><h2>A</h2><!-- /wp:heading --><!-- /wp:column --><!-- wp:column --><!-- wp:paragraph --><p>B</p><!-- /wp:paragraph --><!-- /wp:column --><!-- /wp:columns -->`

	t.Run("Should nest columns, columns children and grandchildren", func(t *testing.T) {
		blocks := Parse(columnsDoc, Options{})
		require.Len(t, blocks, 1)

		columns := blocks[0]
		assert.Equal(t, "columns", columns.Name)
		require.Len(t, columns.Children, 2)

		require.Len(t, columns.Children[0].Children, 1)
		assert.Equal(t, "heading", columns.Children[0].Children[0].Name)
		require.Len(t, columns.Children[1].Children, 1)
		assert.Equal(t, "paragraph", columns.Children[1].Children[0].Name)
	})

	t.Run("Should not let same-name siblings close their parent", func(t *testing.T) {
		doc := "<!-- wp:group -->" +
			"<!-- wp:group -->inner one<!-- /wp:group -->" +
			"<!-- wp:group -->inner two<!-- /wp:group -->" +
			"<!-- /wp:group -->"
		blocks := Parse(doc, Options{})
		require.Len(t, blocks, 1)
		require.Len(t, blocks[0].Children, 2)
		assert.Equal(t, "inner one", blocks[0].Children[0].RawInnerContent)
		assert.Equal(t, "inner two", blocks[0].Children[1].RawInnerContent)
	})

	t.Run("Should recover from a stray closer", func(t *testing.T) {
		blocks := Parse("<!-- /wp:group --><!-- wp:paragraph -->x<!-- /wp:paragraph -->", Options{})
		require.Len(t, blocks, 1)
		assert.Equal(t, "paragraph", blocks[0].Name)
	})

	t.Run("Should treat an unclosed block as running to the end", func(t *testing.T) {
		blocks := Parse("<!-- wp:group -->dangling content", Options{})
		require.Len(t, blocks, 1)
		assert.Equal(t, "dangling content", blocks[0].RawInnerContent)
	})
}

// nestedDoc builds a self-similar structure of the given depth:
// group > group > ... > innermost text.
func nestedDoc(depth int) string {
	var b strings.Builder
	for i := 0; i < depth; i++ {
		fmt.Fprintf(&b, `<!-- wp:group {"layer":%d} -->`, i+1)
	}
	b.WriteString("bottom")
	for i := 0; i < depth; i++ {
		b.WriteString("<!-- /wp:group -->")
	}
	return b.String()
}

// chainDepth walks the single-child chain and returns its length.
func chainDepth(blocks []*core.ContentBlock) int {
	depth := 0
	for len(blocks) == 1 {
		depth++
		blocks = blocks[0].Children
	}
	return depth
}

func TestParse_MaxDepth(t *testing.T) {
	t.Run("Should parse min(D, maxDepth) levels", func(t *testing.T) {
		for _, d := range []int{1, 3, 10, 12, 20} {
			blocks := Parse(nestedDoc(d), Options{})
			want := d
			if want > DefaultMaxDepth {
				want = DefaultMaxDepth
			}
			assert.Equal(t, want, chainDepth(blocks), "depth %d", d)
		}
	})

	t.Run("Should truncate excess depth into inner content, never drop it", func(t *testing.T) {
		blocks := Parse(nestedDoc(12), Options{MaxDepth: 10})
		node := blocks[0]
		for len(node.Children) == 1 {
			node = node.Children[0]
		}
		assert.Contains(t, node.RawInnerContent, "<!-- wp:group", "unparsed markers must survive")
		assert.Contains(t, node.RawInnerContent, "bottom")
	})

	t.Run("Should honor a custom max depth", func(t *testing.T) {
		blocks := Parse(nestedDoc(5), Options{MaxDepth: 2})
		assert.Equal(t, 2, chainDepth(blocks))
	})
}

func TestParse_Determinism(t *testing.T) {
	doc := nestedDoc(4) + `<!-- wp:heading {"level":3} --><h3>t</h3><!-- /wp:heading -->`
	first := Parse(doc, Options{})
	second := Parse(doc, Options{})
	assert.Equal(t, first, second)
}

func TestParse_Options(t *testing.T) {
	doc := `<!-- wp:heading --><h2>A</h2><!-- /wp:heading --><!-- wp:paragraph --><p>B</p><!-- /wp:paragraph -->`

	t.Run("Should filter by block type allow-list", func(t *testing.T) {
		blocks := Parse(doc, Options{BlockTypes: []string{"heading"}})
		require.Len(t, blocks, 1)
		assert.Equal(t, "heading", blocks[0].Name)
	})

	t.Run("Should drop filtered subtrees without promoting children", func(t *testing.T) {
		doc := `<!-- wp:group --><!-- wp:heading --><h2>A</h2><!-- /wp:heading --><!-- /wp:group -->`
		blocks := Parse(doc, Options{BlockTypes: []string{"heading"}})
		assert.Empty(t, blocks, "heading inside an excluded group must not surface")
	})

	t.Run("Should drop empty leaves with SkipEmpty", func(t *testing.T) {
		doc := `<!-- wp:paragraph --><!-- /wp:paragraph --><!-- wp:paragraph --><p>keep</p><!-- /wp:paragraph -->`
		blocks := Parse(doc, Options{SkipEmpty: true})
		require.Len(t, blocks, 1)
		assert.Contains(t, blocks[0].RawInnerContent, "keep")
	})

	t.Run("Should keep empty leaves that carry attributes", func(t *testing.T) {
		blocks := Parse(`<!-- wp:spacer {"height":40} /-->`, Options{SkipEmpty: true})
		assert.Len(t, blocks, 1)
	})
}
