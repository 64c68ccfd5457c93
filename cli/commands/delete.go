package commands

import (
	"fmt"

	"github.com/netkv/netkv/cli/output"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates a new delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, ok := connect()
			if !ok {
				return
			}
			defer c.Close()

			prev, existed, err := c.Delete(args[0])
			if err != nil {
				output.Error(fmt.Sprintf("Delete failed: %v", err))
				return
			}
			printValue(prev, existed)
		},
	}
}
