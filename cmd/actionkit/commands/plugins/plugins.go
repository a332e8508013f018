package plugins

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the plugins command. RunE is attached by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plugins",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "explorer",
	}

	cmd.Flags().StringP("kind", "k", "", MsgFlagKind)

	return cmd
}
