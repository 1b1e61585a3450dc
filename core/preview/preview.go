// Package preview renders HTML-format builder outputs as Markdown for
// quick terminal inspection and diffing. JSON and shortcode outputs are
// already readable as-is and pass through unchanged.
package preview

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/output"
)

// Render returns a terminal-friendly view of a builder output.
func Render(out *core.BuilderOutput) (string, error) {
	data, err := output.Encode(out)
	if err != nil {
		return "", err
	}

	if out.Format != core.FormatHTML {
		return string(data), nil
	}

	markdown, err := htmltomarkdown.ConvertString(string(data))
	if err != nil {
		return "", fmt.Errorf("converting HTML output to markdown: %w", err)
	}
	return markdown, nil
}
