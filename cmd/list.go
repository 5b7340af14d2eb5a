package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/eghc/internal/domain"
)

const listLongDescription = `List discovered components with the number of reactive variables,
reactive statements, signals and template bindings of each. Components that
fail to analyze are listed with their error.`

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List components and their reactive shape",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				SourceArgs: domain.SourceArgs{
					Paths:   parsePaths(args),
					Exclude: append(append([]string{}, config.Exclude...), listExcludeFlags...),
				},
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude components matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
