package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mdalint/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved badge reports",
		Long:  "View badge reports saved by a previous check from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: settings.Reports})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
