package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshaynair/blockbridge/core"
)

func TestWriteResult(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	t.Run("Should write string content with the format extension", func(t *testing.T) {
		res := core.ExportResult{
			Builder: "gutenberg",
			Success: true,
			Output: &core.BuilderOutput{
				Format:  core.FormatHTML,
				Content: "<!-- wp:paragraph --><p>hi</p><!-- /wp:paragraph -->",
			},
		}
		path, err := w.WriteResult("https://example.com/about", res)
		require.NoError(t, err)
		assert.Equal(t, "example_com_about_gutenberg.html", filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "wp:paragraph")
	})

	t.Run("Should marshal json content indented", func(t *testing.T) {
		res := core.ExportResult{
			Builder: "elementor",
			Success: true,
			Output: &core.BuilderOutput{
				Format:  core.FormatJSON,
				Content: map[string]any{"version": "0.4"},
			},
		}
		path, err := w.WriteResult("page.html", res)
		require.NoError(t, err)
		assert.Equal(t, "page_elementor.json", filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\"version\": \"0.4\"")
	})

	t.Run("Should refuse to write a failed result", func(t *testing.T) {
		_, err := w.WriteResult("x", core.ExportResult{Builder: "divi", Error: "boom"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "divi")
	})
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".json", Extension(core.FormatJSON))
	assert.Equal(t, ".html", Extension(core.FormatHTML))
	assert.Equal(t, ".txt", Extension(core.FormatShortcode))
	assert.Equal(t, ".out", Extension(core.OutputFormat("mystery")))
}

func TestNameFromSource(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com/docs/intro", "example_com_docs_intro"},
		{"https://example.com/", "example_com"},
		{"https://example.com", "example_com"},
		{"/tmp/page.html", "page"},
		{"page.html", "page"},
		{"weird name!.html", "weird_name_"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, nameFromSource(tc.in), tc.in)
	}
}
