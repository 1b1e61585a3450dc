package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/snapshot"
)

func heading(text string) *core.ContentBlock {
	return &core.ContentBlock{
		Namespace:       core.DefaultNamespace,
		Name:            "heading",
		Attributes:      map[string]any{"level": 2},
		RawInnerContent: text,
	}
}

func TestExport(t *testing.T) {
	d := NewDispatcher()
	blocks := []*core.ContentBlock{heading("Hello")}

	t.Run("Should convert blocks for a known builder", func(t *testing.T) {
		res := d.Export(Request{Builder: "gutenberg", Blocks: blocks})
		require.True(t, res.Success, res.Error)
		require.NotNil(t, res.Output)
		assert.Equal(t, core.MethodNative, res.Output.Metadata.ConversionMethod)
		assert.Equal(t, 1, res.Output.Metadata.WidgetCount)
	})

	t.Run("Should fail when both inputs are set", func(t *testing.T) {
		res := d.Export(Request{
			Builder:  "gutenberg",
			Blocks:   blocks,
			Snapshot: []*core.ElementSnapshot{},
		})
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "exactly one of blocks or snapshot")
	})

	t.Run("Should fail when neither input is set", func(t *testing.T) {
		res := d.Export(Request{Builder: "gutenberg"})
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "exactly one of blocks or snapshot")
	})

	t.Run("Should report unknown builders with the known list", func(t *testing.T) {
		res := d.Export(Request{Builder: "squarespace", Blocks: blocks})
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, `unknown builder "squarespace"`)
		assert.Contains(t, res.Error, "gutenberg")
		assert.Contains(t, res.Error, "kadence")
	})

	t.Run("Should resolve names ignoring case, hyphens and underscores", func(t *testing.T) {
		for _, alias := range []string{"Beaver-Builder", "beaver_builder", "BEAVER", "Beaver Builder"} {
			res := d.Export(Request{Builder: alias, Blocks: blocks})
			require.True(t, res.Success, "alias %q: %s", alias, res.Error)
			assert.Equal(t, "beaver", res.Builder)
		}
	})

	t.Run("Should recover a converter panic into a failed result", func(t *testing.T) {
		res := d.Export(Request{Builder: "gutenberg", Blocks: []*core.ContentBlock{nil}})
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "converter panic")
	})

	t.Run("Should apply tuned snapshot options to every converter", func(t *testing.T) {
		var els []*core.ElementSnapshot
		for i := 0; i < 5; i++ {
			els = append(els, &core.ElementSnapshot{
				Tag:     "p",
				Text:    "row",
				Box:     core.Box{Y: float64(i * 100), Width: 10, Height: 10},
				Visible: true,
			})
		}

		tuned := NewDispatcherWithSnapshotOptions(snapshot.Options{MaxElements: 1})
		res := tuned.Export(Request{Builder: "gutenberg", Snapshot: els})
		require.True(t, res.Success, res.Error)
		assert.Equal(t, 1, res.Output.Metadata.WidgetCount, "element cap limits converted nodes")

		res = d.Export(Request{Builder: "gutenberg", Snapshot: els})
		require.True(t, res.Success, res.Error)
		assert.Equal(t, 5, res.Output.Metadata.WidgetCount, "default cap leaves small inputs alone")
	})

	t.Run("Should convert a snapshot through the fallback path", func(t *testing.T) {
		res := d.Export(Request{Builder: "elementor", Snapshot: []*core.ElementSnapshot{
			{Tag: "p", Text: "fallback", Box: core.Box{Width: 10, Height: 10}, Visible: true},
		}})
		require.True(t, res.Success, res.Error)
		assert.Equal(t, core.MethodFallback, res.Output.Metadata.ConversionMethod)
	})
}

func TestExportToMultiple(t *testing.T) {
	d := NewDispatcher()
	blocks := []*core.ContentBlock{heading("Hello")}

	results := d.ExportToMultiple([]string{"gutenberg", "nope", "divi"}, Request{Blocks: blocks})
	require.Len(t, results, 3)
	assert.True(t, results["gutenberg"].Success)
	assert.True(t, results["divi"].Success)
	assert.False(t, results["nope"].Success)
	assert.NotNil(t, results["gutenberg"].Output)
	assert.NotNil(t, results["divi"].Output)
}

func TestAvailableBuilders(t *testing.T) {
	d := NewDispatcher()
	names := d.AvailableBuilders()
	require.Len(t, names, 11)
	assert.Equal(t, "gutenberg", names[0], "registration order is stable")
	for _, name := range names {
		info, ok := d.BuilderInfo(name)
		require.True(t, ok, name)
		assert.Equal(t, name, info.Name)
		assert.NotEmpty(t, info.DisplayName)
		assert.NotEmpty(t, info.Description)
	}
}

func TestBuilderInfo(t *testing.T) {
	d := NewDispatcher()

	info, ok := d.BuilderInfo("WP-Bakery")
	require.True(t, ok)
	assert.Equal(t, "wpbakery", info.Name)
	assert.Equal(t, core.FormatShortcode, info.OutputFormat)

	_, ok = d.BuilderInfo("")
	assert.False(t, ok)
}

func TestDetectBuilderFromMarkup(t *testing.T) {
	d := NewDispatcher()

	cases := []struct {
		name string
		html string
		want string
	}{
		{"Should detect gutenberg comments", `<div><!-- wp:paragraph --><p>x</p><!-- /wp:paragraph --></div>`, "gutenberg"},
		{"Should detect kadence before gutenberg", `<div class="wp-block-kadence-rowlayout wp-block">x</div>`, "kadence"},
		{"Should detect elementor", `<div data-elementor-type="wp-page">x</div>`, "elementor"},
		{"Should detect divi", `<div class="et_pb_section">x</div>`, "divi"},
		{"Should detect beaver", `<div class="fl-builder-content">x</div>`, "beaver"},
		{"Should detect bricks", `<section class="brxe-section">x</section>`, "bricks"},
		{"Should detect avada", `<div class="fusion-builder-row">x</div>`, "avada"},
		{"Should detect brizy", `<div class="brz-root__container">x</div>`, "brizy"},
		{"Should prefer the specific builder when generic markers coexist", `<div class="et_pb_section wp-block">x</div>`, "divi"},
		{"Should return empty for plain html", `<main><p>nothing special</p></main>`, ""},
		{"Should return empty for empty input", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, d.DetectBuilderFromMarkup(tc.html))
		})
	}

	t.Run("Should fall back to selector probes", func(t *testing.T) {
		// No fingerprint substring appears verbatim; the class list only
		// matches via the parsed-DOM selector pass.
		html := `<div class="wp-block">selector only</div>`
		assert.Equal(t, "gutenberg", d.DetectBuilderFromMarkup(html))
	})
}
