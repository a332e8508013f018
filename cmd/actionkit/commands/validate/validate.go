package validate

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the validate command. RunE is attached by the root command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "explorer",
	}
}
