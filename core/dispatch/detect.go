package dispatch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fingerprint is one detection rule: a substring match against the raw
// document plus an optional selector probe against the parsed DOM. Rules
// are evaluated top-down and the first match wins, so ordering is a
// correctness requirement: fingerprints that are specific refinements of
// a more generic signature must come first. Kadence markup, for example,
// also contains generic wp-block classes, so it sits above gutenberg.
type fingerprint struct {
	builder    string
	substrings []string
	selector   string
}

var fingerprints = []fingerprint{
	{builder: "elementor", substrings: []string{"data-elementor-type", "elementor-widget-"}, selector: "[data-elementor-id]"},
	{builder: "divi", substrings: []string{"et_pb_section", "et-db"}, selector: ".et_pb_section"},
	{builder: "wpbakery", substrings: []string{"wpb_row", "vc_row", "js_composer"}, selector: ".wpb_wrapper"},
	{builder: "beaver", substrings: []string{"fl-builder-content"}, selector: "[data-node]"},
	{builder: "oxygen", substrings: []string{"ct-section", "oxygen-body"}, selector: ".ct-section"},
	{builder: "bricks", substrings: []string{"brxe-"}, selector: "[data-script-id]"},
	{builder: "avada", substrings: []string{"fusion-builder-row", "fusion_builder_container"}, selector: ".fusion-layout-column"},
	{builder: "cornerstone", substrings: []string{"cs-content", "x-section"}, selector: ".x-section"},
	{builder: "brizy", substrings: []string{"brz-root", "brz-css"}, selector: ".brz"},
	{builder: "kadence", substrings: []string{"wp-block-kadence", "kt-row-layout", "kadence-column"}, selector: ".kt-row-layout-inner"},
	{builder: "gutenberg", substrings: []string{"<!-- wp:", "wp-block-"}, selector: ".wp-block"},
}

// DetectBuilderFromMarkup guesses which builder produced an HTML
// document. Returns "" when nothing matches. Substring probes run
// against the raw document; selector probes run against the parsed DOM
// when the raw scan is inconclusive.
func (d *Dispatcher) DetectBuilderFromMarkup(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	for _, fp := range fingerprints {
		for _, sub := range fp.substrings {
			if strings.Contains(html, sub) {
				return fp.builder
			}
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	for _, fp := range fingerprints {
		if fp.selector == "" {
			continue
		}
		if doc.Find(fp.selector).Length() > 0 {
			return fp.builder
		}
	}
	return ""
}
