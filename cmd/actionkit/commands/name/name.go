package name

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the name command. RunE is attached by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "name <desired-name>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "naming",
	}

	cmd.Flags().String("page", "", MsgFlagPage)
	cmd.Flags().StringP("actions", "a", "", MsgFlagActions)
	cmd.Flags().Bool("copy", false, MsgFlagCopy)
	_ = cmd.MarkFlagRequired("page")
	_ = cmd.MarkFlagFilename("actions", "yaml", "yml", "toml", "json")

	return cmd
}
