package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/eghc/internal/domain"
	m "github.com/mouse-blink/eghc/internal/model"
)

var (
	inspectIDFlag   string
	inspectRootFlag string
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the signal graph of a component",
		Long:  "Show the signals, their subscribers and the reactive statement evaluation order of one component.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Inspect(cmd.Context(), domain.InspectArgs{
				Path: m.Path(args[0]),
				Root: m.Path(inspectRootFlag),
				ID:   inspectIDFlag,
			})
		},
	}
	cmd.Flags().StringVar(&inspectIDFlag, "id", "", "component ID used for scope hashing (defaults to the path below --root)")
	cmd.Flags().StringVar(&inspectRootFlag, "root", "", "directory component IDs are relative to, as in build (defaults to the working directory)")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
