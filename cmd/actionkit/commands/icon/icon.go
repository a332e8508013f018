package icon

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the icon command. RunE is attached by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "icon <plugin-id>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "explorer",
	}

	cmd.Flags().StringP("method", "m", "", MsgFlagMethod)
	cmd.Flags().Bool("remote-icon", false, MsgFlagRemoteIcon)
	cmd.Flags().Bool("markup", false, MsgFlagMarkup)

	return cmd
}
