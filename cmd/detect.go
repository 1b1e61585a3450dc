// Package cmd — detect command.
// Prints the builder most likely to have produced a page's markup.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akshaynair/blockbridge/core/dispatch"
)

var detectCmd = &cobra.Command{
	Use:   "detect <url-or-file>",
	Short: "Detect which page builder produced a document",
	Long: `Detect fetches a page (or reads a local HTML file) and matches it
against the builder fingerprint table. More specific fingerprints are
checked before generic ones.

Examples:
  blockbridge detect https://example.com
  blockbridge detect page.html`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	html, err := loadHTML(context.Background(), args[0])
	if err != nil {
		return err
	}

	dispatcher := dispatch.NewDispatcher()
	builder := dispatcher.DetectBuilderFromMarkup(html)
	if builder == "" {
		fmt.Fprintln(os.Stdout, "no known builder detected")
		return nil
	}

	info, _ := dispatcher.BuilderInfo(builder)
	fmt.Fprintf(os.Stdout, "%s (%s, %s output)\n", builder, info.DisplayName, info.OutputFormat)
	return nil
}
