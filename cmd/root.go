// Package cmd implements the CLI commands for BlockBridge using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Persistent flags.
var (
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "blockbridge",
	Short: "BlockBridge — convert block markup between page builder formats",
	Long: `BlockBridge parses comment-delimited block markup embedded in HTML and
re-emits it in the format of any supported page builder (JSON schemas,
HTML dialects, or bracket shortcodes). When no native markup exists, it
can reconstruct an approximate tree from rendered-DOM element snapshots.

Usage:
  blockbridge export <url-or-file> --builder elementor
  blockbridge detect <url-or-file>
  blockbridge builders`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to blockbridge.yml (optional)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
