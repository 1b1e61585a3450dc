// Package cmd — export command.
// This is the main command that orchestrates the pipeline:
// capture → parse (or snapshot-normalize) → convert → write.
//
// It handles flag validation, builder selection, fan-out to multiple
// builders, and the --all mode that exports every discovered page of a
// site.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akshaynair/blockbridge/config"
	"github.com/akshaynair/blockbridge/core"
	"github.com/akshaynair/blockbridge/core/dispatch"
	"github.com/akshaynair/blockbridge/core/fetch"
	"github.com/akshaynair/blockbridge/core/output"
	"github.com/akshaynair/blockbridge/core/parse"
	"github.com/akshaynair/blockbridge/core/preview"
	"github.com/akshaynair/blockbridge/core/report"
	"github.com/akshaynair/blockbridge/core/snapshot"
	"github.com/akshaynair/blockbridge/crawl"
)

// Flag variables.
var (
	flagBuilders    []string
	flagAllBuilders bool
	flagSnapshot    bool
	flagAll         bool
	flagMaxPages    int
	flagMaxDepth    int
	flagSkipEmpty   bool
	flagOutputDir   string
	flagPreview     bool
	flagReport      string
)

var exportCmd = &cobra.Command{
	Use:   "export <url-or-file>",
	Short: "Export block content to one or more builder formats",
	Long: `Export captures a page (or reads a local HTML or snapshot-JSON file),
parses its block markup, and converts it to the selected builder formats.

Examples:
  blockbridge export https://example.com --builder elementor
  blockbridge export page.html --builder divi --builder wpbakery
  blockbridge export https://example.com --all-builders --report run.pdf
  blockbridge export snapshot.json --snapshot --builder gutenberg
  blockbridge export https://example.com --all --builder elementor`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringSliceVar(&flagBuilders, "builder", nil, "Target builder (repeatable)")
	exportCmd.Flags().BoolVar(&flagAllBuilders, "all-builders", false, "Export to every registered builder")
	exportCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "Treat input as a DOM snapshot JSON file")
	exportCmd.Flags().BoolVar(&flagAll, "all", false, "Export all discovered pages of the site")
	exportCmd.Flags().IntVar(&flagMaxPages, "max_pages", crawl.DefaultMaxPages, "Page limit for --all discovery")
	exportCmd.Flags().IntVar(&flagMaxDepth, "max_depth", 0, "Override parser max depth")
	exportCmd.Flags().BoolVar(&flagSkipEmpty, "skip_empty", false, "Drop empty leaf blocks while parsing")
	exportCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	exportCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print a terminal preview of each output")
	exportCmd.Flags().StringVar(&flagReport, "report", "", "Write a PDF run report to this path")
}

func runExport(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyExportFlags(&cfg)

	builders := flagBuilders
	dispatcher := dispatch.NewDispatcherWithSnapshotOptions(cfg.SnapshotOptions())
	if flagAllBuilders {
		builders = dispatcher.AvailableBuilders()
	}
	if len(builders) == 0 {
		builders = cfg.Export.Builders
	}
	if len(builders) == 0 {
		return fmt.Errorf("no target builders: pass --builder or --all-builders")
	}

	writer, err := output.New(cfg.Export.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	if flagAll {
		if !isURL(source) {
			return fmt.Errorf("--all requires a URL, got local file %s", source)
		}
		return exportSite(ctx, source, builders, cfg, dispatcher, writer)
	}
	return exportOne(ctx, source, builders, cfg, dispatcher, writer, flagReport)
}

// applyExportFlags lets CLI flags override the config file.
func applyExportFlags(cfg *config.Config) {
	if flagMaxDepth > 0 {
		cfg.Parser.MaxDepth = flagMaxDepth
	}
	if flagSkipEmpty {
		cfg.Parser.SkipEmpty = true
	}
	if flagOutputDir != "" {
		cfg.Export.OutputDir = flagOutputDir
	}
}

// exportOne processes a single source through the pipeline.
func exportOne(ctx context.Context, source string, builders []string, cfg config.Config, dispatcher *dispatch.Dispatcher, writer *output.Writer, reportPath string) error {
	req, err := buildRequest(ctx, source, cfg)
	if err != nil {
		return err
	}

	results := dispatcher.ExportToMultiple(builders, req)
	failures := reportResults(source, results, writer)

	if reportPath != "" {
		data, err := report.Generate(source, results)
		if err != nil {
			return err
		}
		if err := os.WriteFile(reportPath, data, 0644); err != nil {
			return fmt.Errorf("writing report %s: %w", reportPath, err)
		}
		fmt.Fprintf(os.Stdout, "✓ Report: %s\n", reportPath)
	}

	if failures == len(results) {
		return fmt.Errorf("all %d builder exports failed", failures)
	}
	return nil
}

// exportSite discovers a site's pages and exports each one. A failing
// page is reported and skipped; it never aborts the rest of the run.
func exportSite(ctx context.Context, baseURL string, builders []string, cfg config.Config, dispatcher *dispatch.Dispatcher, writer *output.Writer) error {
	fetcher := fetch.New()
	fmt.Fprintf(os.Stdout, "Discovering pages from %s...\n", baseURL)

	pages, err := crawl.DiscoverPages(ctx, baseURL, fetcher, flagMaxPages)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Found %d pages\n", len(pages))

	for i, page := range pages {
		if err := exportOne(ctx, page, builders, cfg, dispatcher, writer, pageReportPath(flagReport, i+1)); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", page, err)
		}
	}
	return nil
}

// pageReportPath derives a per-page report filename so a multi-page run
// never overwrites one report with another: run.pdf → run_001.pdf.
func pageReportPath(base string, page int) string {
	if base == "" {
		return ""
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(base, ext), page, ext)
}

// buildRequest loads the source and produces a dispatch request carrying
// either a parsed block tree or a snapshot element list.
func buildRequest(ctx context.Context, source string, cfg config.Config) (dispatch.Request, error) {
	if flagSnapshot {
		f, err := os.Open(source)
		if err != nil {
			return dispatch.Request{}, fmt.Errorf("opening snapshot file: %w", err)
		}
		defer f.Close()
		elements, err := snapshot.Load(f)
		if err != nil {
			return dispatch.Request{}, err
		}
		return dispatch.Request{Snapshot: elements}, nil
	}

	html, err := loadHTML(ctx, source)
	if err != nil {
		return dispatch.Request{}, err
	}
	blocks := parse.Parse(html, cfg.ParseOptions())
	if len(blocks) == 0 {
		return dispatch.Request{}, fmt.Errorf("no block markup found in %s (use --snapshot for rendered-DOM input)", source)
	}
	return dispatch.Request{Blocks: blocks}, nil
}

// loadHTML fetches a URL or reads a local file.
func loadHTML(ctx context.Context, source string) (string, error) {
	if isURL(source) {
		result, err := fetch.New().Fetch(ctx, source)
		if err != nil {
			return "", err
		}
		return result.HTML, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}
	return string(data), nil
}

// reportResults writes successes to disk, prints outcomes, and returns
// the failure count.
func reportResults(source string, results map[string]core.ExportResult, writer *output.Writer) int {
	failures := 0
	for name, result := range results {
		if !result.Success {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %s\n", name, result.Error)
			continue
		}

		path, err := writer.WriteResult(source, result)
		if err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", name, err)
			continue
		}
		m := result.Output.Metadata
		fmt.Fprintf(os.Stdout, "✓ %s: %s (%d widgets, %d sections, %dms)\n",
			name, path, m.WidgetCount, m.SectionCount, m.BuildTimeMs)

		if flagPreview {
			if text, err := preview.Render(result.Output); err == nil {
				fmt.Fprintf(os.Stdout, "--- %s preview ---\n%s\n", name, strings.TrimSpace(text))
			}
		}
	}
	return failures
}

// isURL reports whether the source looks like an absolute URL.
func isURL(source string) bool {
	parsed, err := url.Parse(source)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
