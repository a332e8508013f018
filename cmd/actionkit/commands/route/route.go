package route

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the route command. RunE is attached by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "route <kind> <page-id> <action-id>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(3),
		GroupID: "explorer",
	}

	cmd.Flags().StringP("plugin", "p", "", MsgFlagPlugin)

	return cmd
}
