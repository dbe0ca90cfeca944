package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mdalint/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

const listLongDescription = `List Python modules and the number of classes in each that derive
directly from AnalysisBase. Modules that cannot be parsed are marked as
unreadable. The result cache and reports directory are not touched.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List modules and their AnalysisBase classes",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: settings.Exclude,
				Workers: settings.Workers,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
