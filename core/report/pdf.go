// Package report renders a PDF summary of an export run: which builders
// ran, how many widgets and sections each produced, which conversion
// path was used, and how long each conversion took.
package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"github.com/akshaynair/blockbridge/core"
)

// Generate renders the run summary for a set of export results, keyed by
// builder name, into PDF bytes.
func Generate(source string, results map[string]core.ExportResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "BlockBridge Conversion Report", "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+source, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	// Table header.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	writeRow(pdf, true, "Builder", "Status", "Widgets", "Sections", "Method", "Time (ms)")

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	pdf.SetFont("Helvetica", "", 10)
	for _, name := range names {
		r := results[name]
		if !r.Success {
			writeRow(pdf, false, name, "failed", "-", "-", "-", "-")
			continue
		}
		m := r.Output.Metadata
		writeRow(pdf, false, name, "ok",
			fmt.Sprintf("%d", m.WidgetCount),
			fmt.Sprintf("%d", m.SectionCount),
			string(m.ConversionMethod),
			fmt.Sprintf("%d", m.BuildTimeMs))
	}

	// Failure details after the table.
	pdf.Ln(4)
	for _, name := range names {
		r := results[name]
		if r.Success {
			continue
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.MultiCell(0, 5, name+" error:", "", "L", false)
		pdf.SetFont("Courier", "", 9)
		pdf.MultiCell(0, 4.5, r.Error, "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow writes one six-column table row.
func writeRow(pdf *gofpdf.Fpdf, fill bool, cols ...string) {
	widths := []float64{45, 20, 25, 25, 30, 25}
	for i, col := range cols {
		w := widths[len(widths)-1]
		if i < len(widths) {
			w = widths[i]
		}
		pdf.CellFormat(w, 7, col, "1", 0, "L", fill, 0, "")
	}
	pdf.Ln(-1)
}
