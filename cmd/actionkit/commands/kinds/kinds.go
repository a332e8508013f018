package kinds

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the kinds command. RunE is attached by the root command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "kinds",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "explorer",
	}
}
