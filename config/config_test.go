package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshaynair/blockbridge/core/parse"
	"github.com/akshaynair/blockbridge/core/snapshot"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, parse.DefaultMaxDepth, cfg.Parser.MaxDepth)
	assert.False(t, cfg.Parser.SkipEmpty)
	assert.Equal(t, snapshot.DefaultMaxElements, cfg.Snapshot.MaxElements)
	assert.Equal(t, snapshot.DefaultRowTolerance, cfg.Snapshot.RowTolerancePx)
	assert.Equal(t, []string{"gutenberg"}, cfg.Export.Builders)
}

func TestLoad(t *testing.T) {
	t.Run("Should return defaults for an empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Should return defaults for a missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Should override only the keys present in the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blockbridge.yml")
		body := `
parser:
  max_depth: 4
  skip_empty: true
export:
  builders: [elementor, divi]
  output_dir: out
`
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Parser.MaxDepth)
		assert.True(t, cfg.Parser.SkipEmpty)
		assert.Equal(t, []string{"elementor", "divi"}, cfg.Export.Builders)
		assert.Equal(t, "out", cfg.Export.OutputDir)
		// Untouched sections keep their defaults.
		assert.Equal(t, snapshot.DefaultMaxElements, cfg.Snapshot.MaxElements)
	})

	t.Run("Should error on malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("parser: [broken"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})
}

func TestOptionConversion(t *testing.T) {
	cfg := Default()
	cfg.Parser.MaxDepth = 3
	cfg.Parser.BlockTypes = []string{"heading"}
	cfg.Snapshot.RowTolerancePx = 25

	po := cfg.ParseOptions()
	assert.Equal(t, 3, po.MaxDepth)
	assert.Equal(t, []string{"heading"}, po.BlockTypes)

	so := cfg.SnapshotOptions()
	assert.Equal(t, 25.0, so.RowTolerance)
	assert.Equal(t, snapshot.DefaultMaxElements, so.MaxElements)
}
