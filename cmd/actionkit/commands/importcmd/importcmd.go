package importcmd

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the import command. RunE is attached by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import <export.json>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "naming",
	}

	cmd.Flags().String("default-page", "", MsgFlagDefaultPage)
	cmd.Flags().StringToString("rename", nil, MsgFlagRename)
	_ = cmd.MarkFlagFilename("json")

	return cmd
}
