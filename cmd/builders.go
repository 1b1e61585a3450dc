// Package cmd — builders command.
// Lists the registered builders and their registry metadata.
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/akshaynair/blockbridge/core/dispatch"
)

var buildersCmd = &cobra.Command{
	Use:   "builders [name]",
	Short: "List available builders or show one builder's details",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuilders,
}

func init() {
	rootCmd.AddCommand(buildersCmd)
}

func runBuilders(cmd *cobra.Command, args []string) error {
	dispatcher := dispatch.NewDispatcher()

	if len(args) == 1 {
		info, ok := dispatcher.BuilderInfo(args[0])
		if !ok {
			return fmt.Errorf("unknown builder %q", args[0])
		}
		fmt.Fprintf(os.Stdout, "%s (%s)\nFormat: %s\n%s\n",
			info.Name, info.DisplayName, info.OutputFormat, info.Description)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY\tFORMAT")
	for _, name := range dispatcher.AvailableBuilders() {
		info, _ := dispatcher.BuilderInfo(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.DisplayName, info.OutputFormat)
	}
	return w.Flush()
}
