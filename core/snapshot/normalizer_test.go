package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshaynair/blockbridge/core"
)

func el(tag, text string, x, y float64) *core.ElementSnapshot {
	return &core.ElementSnapshot{
		Tag:     tag,
		Text:    text,
		Box:     core.Box{X: x, Y: y, Width: 100, Height: 20},
		Visible: true,
	}
}

func TestFilterVisible(t *testing.T) {
	visible := el("p", "keep", 0, 0)
	hiddenFlag := el("p", "no", 0, 0)
	hiddenFlag.Visible = false
	zeroBox := el("p", "no", 0, 0)
	zeroBox.Box.Width = 0
	displayNone := el("p", "no", 0, 0)
	displayNone.Style = map[string]string{"display": "none"}
	visHidden := el("p", "no", 0, 0)
	visHidden.Style = map[string]string{"visibility": "hidden"}
	transparent := el("p", "no", 0, 0)
	transparent.Style = map[string]string{"opacity": "0"}

	got := FilterVisible([]*core.ElementSnapshot{
		visible, hiddenFlag, zeroBox, displayNone, visHidden, transparent, nil,
	})
	require.Len(t, got, 1)
	assert.Same(t, visible, got[0])
}

func TestDetectColumns(t *testing.T) {
	t.Run("Should bucket elements within the tolerance into one row", func(t *testing.T) {
		rows := DetectColumns([]*core.ElementSnapshot{
			el("p", "a", 0, 100),
			el("p", "b", 200, 130), // within 50px of the row anchor
			el("p", "c", 0, 300),
		}, DefaultRowTolerance)
		require.Len(t, rows, 2)
		assert.Len(t, rows[0], 2)
		assert.Len(t, rows[1], 1)
	})

	t.Run("Should order rows top to bottom and members left to right", func(t *testing.T) {
		rows := DetectColumns([]*core.ElementSnapshot{
			el("p", "right", 400, 10),
			el("p", "below", 0, 200),
			el("p", "left", 0, 12),
		}, DefaultRowTolerance)
		require.Len(t, rows, 2)
		assert.Equal(t, "left", rows[0][0].Text)
		assert.Equal(t, "right", rows[0][1].Text)
		assert.Equal(t, "below", rows[1][0].Text)
	})

	t.Run("Should honor a custom tolerance", func(t *testing.T) {
		rows := DetectColumns([]*core.ElementSnapshot{
			el("p", "a", 0, 0),
			el("p", "b", 0, 30),
		}, 10)
		assert.Len(t, rows, 2)
	})

	t.Run("Should return nil for no elements", func(t *testing.T) {
		assert.Nil(t, DetectColumns(nil, DefaultRowTolerance))
	})
}

func TestCanonicalSplit(t *testing.T) {
	two := []*core.ElementSnapshot{el("p", "", 0, 0), el("p", "", 100, 0)}
	three := []*core.ElementSnapshot{el("p", "", 0, 0), el("p", "", 100, 0), el("p", "", 200, 0)}
	one := []*core.ElementSnapshot{el("p", "", 0, 0)}

	t.Run("Should pick the widest row", func(t *testing.T) {
		assert.Equal(t, 3, canonicalSplit([][]*core.ElementSnapshot{one, three, two}))
	})
	t.Run("Should resolve a tie between widest rows to one column", func(t *testing.T) {
		assert.Equal(t, 1, canonicalSplit([][]*core.ElementSnapshot{two, two, one}))
	})
	t.Run("Should treat repeated single rows as one column", func(t *testing.T) {
		assert.Equal(t, 1, canonicalSplit([][]*core.ElementSnapshot{one, one}))
	})
}

func TestBuildTree(t *testing.T) {
	t.Run("Should wrap canonical rows in a columns container", func(t *testing.T) {
		blocks := BuildTree([]*core.ElementSnapshot{
			el("h2", "Title", 0, 0),
			el("p", "Left", 0, 100),
			el("p", "Right", 400, 110),
		}, Options{})
		require.Len(t, blocks, 2)

		assert.Equal(t, "heading", blocks[0].Name)
		assert.Equal(t, 2, blocks[0].AttrInt("level", 2))

		columns := blocks[1]
		assert.Equal(t, "columns", columns.Name)
		require.Len(t, columns.Children, 2)
		for _, col := range columns.Children {
			assert.Equal(t, "column", col.Name)
			require.Len(t, col.Children, 1)
		}
		assert.Equal(t, "Left", columns.Children[0].Children[0].RawInnerContent)
		assert.Equal(t, "Right", columns.Children[1].Children[0].RawInnerContent)
	})

	t.Run("Should cap elements before grouping", func(t *testing.T) {
		var els []*core.ElementSnapshot
		for i := 0; i < 20; i++ {
			els = append(els, el("p", "x", 0, float64(i*100)))
		}
		blocks := BuildTree(els, Options{MaxElements: 5})
		assert.Len(t, blocks, 5)
	})

	t.Run("Should return nil when nothing is visible", func(t *testing.T) {
		hidden := el("p", "x", 0, 0)
		hidden.Visible = false
		assert.Nil(t, BuildTree([]*core.ElementSnapshot{hidden}, Options{}))
	})
}

func TestElementToBlock(t *testing.T) {
	t.Run("Should map unknown tags to raw html blocks", func(t *testing.T) {
		b := elementToBlock(el("canvas", "painted", 0, 0))
		assert.Equal(t, "html", b.Name)
		assert.Equal(t, "painted", b.RawInnerContent)
	})

	t.Run("Should carry image source and alt", func(t *testing.T) {
		img := el("img", "", 0, 0)
		img.Attributes = map[string]string{"src": "https://example.com/a.png", "alt": "A"}
		b := elementToBlock(img)
		assert.Equal(t, "image", b.Name)
		assert.Equal(t, "https://example.com/a.png", b.Attr("url", ""))
		assert.Equal(t, "A", b.Attr("alt", ""))
	})

	t.Run("Should mark ordered lists and split items", func(t *testing.T) {
		ol := el("ol", "- first\n- second", 0, 0)
		b := elementToBlock(ol)
		assert.Equal(t, "list", b.Name)
		assert.Equal(t, true, b.Attributes["ordered"])
		assert.Equal(t, []any{"first", "second"}, b.Attributes["items"])
	})

	t.Run("Should fold computed style into attributes", func(t *testing.T) {
		p := el("p", "styled", 0, 0)
		p.Style = map[string]string{
			"text-align":       "center",
			"color":            "rgb(255, 0, 0)",
			"background-color": "transparent",
			"padding":          "10px 20px",
		}
		b := elementToBlock(p)
		assert.Equal(t, "center", b.Attr("align", ""))
		assert.Equal(t, "#FF0000", b.Attr("textColor", ""))
		assert.NotContains(t, b.Attributes, "backgroundColor")
		pad, ok := b.Attributes["padding"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "10px", pad["top"])
		assert.Equal(t, "20px", pad["left"])
	})

	t.Run("Should reduce rich-text html to plain text", func(t *testing.T) {
		p := el("p", "fallback", 0, 0)
		p.Attributes = map[string]string{"html": "<p>Hello <strong>world</strong></p>"}
		b := elementToBlock(p)
		assert.Contains(t, b.RawInnerContent, "Hello")
		assert.Contains(t, b.RawInnerContent, "world")
		assert.NotContains(t, b.RawInnerContent, "<strong>")
	})
}

func TestLoad(t *testing.T) {
	t.Run("Should decode a snapshot payload", func(t *testing.T) {
		payload := `[{"tag":"p","text":"hi","box":{"x":0,"y":0,"width":10,"height":10},"visible":true}]`
		els, err := Load(strings.NewReader(payload))
		require.NoError(t, err)
		require.Len(t, els, 1)
		assert.Equal(t, "p", els[0].Tag)
		assert.True(t, els[0].Visible)
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		_, err := Load(strings.NewReader("{not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding snapshot")
	})
}
