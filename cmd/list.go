package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bundlepatch/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every patch and its state in the bundle",
		Long: `List classifies every known patch against the bundle without writing
and prints a table with one row per patch. Patches whose snippet is not
recognised also get the closest partial match for each site.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reported(newWorkflow(cmd).Status(domain.StatusArgs{TargetArgs: targetArgs()}))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
