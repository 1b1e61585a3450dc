// Package output handles file naming and writing for export results.
// Filenames are derived from the source (URL or local file) plus the
// builder name; the extension follows the builder's output format.
package output

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/akshaynair/blockbridge/core"
)

// Writer writes rendered builder outputs to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteResult writes one successful export result.
// Filename: <source>_<builder>.<ext> (e.g. example_com_elementor.json).
func (w *Writer) WriteResult(source string, result core.ExportResult) (string, error) {
	if !result.Success || result.Output == nil {
		return "", fmt.Errorf("refusing to write failed export for builder %s: %s",
			result.Builder, result.Error)
	}

	data, err := Encode(result.Output)
	if err != nil {
		return "", err
	}

	name := nameFromSource(source) + "_" + sanitize(result.Builder) + Extension(result.Output.Format)
	path := filepath.Join(w.OutputDir, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Encode serializes a builder output's content: JSON graphs marshal
// indented, string contents pass through as bytes.
func Encode(out *core.BuilderOutput) ([]byte, error) {
	if s, ok := out.Content.(string); ok {
		return []byte(s), nil
	}
	data, err := json.MarshalIndent(out.Content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling output JSON: %w", err)
	}
	return data, nil
}

// Extension maps an output format onto a file extension.
func Extension(format core.OutputFormat) string {
	switch format {
	case core.FormatJSON:
		return ".json"
	case core.FormatHTML:
		return ".html"
	case core.FormatShortcode:
		return ".txt"
	}
	return ".out"
}

// nameFromSource converts a URL or file path into a flat filename stem.
// Example: https://example.com/docs/intro → example_com_docs_intro
func nameFromSource(source string) string {
	parsed, err := url.Parse(source)
	if err != nil || parsed.Host == "" {
		base := filepath.Base(source)
		return sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
