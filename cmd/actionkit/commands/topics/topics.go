package topics

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the topics command. RunE is attached by the root command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
	}
}
