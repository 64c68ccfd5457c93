package commands

import (
	"fmt"

	"github.com/netkv/netkv/cli/output"
	"github.com/spf13/cobra"
)

// NewSetCommand creates a new set command
func NewSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a key-value pair",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			c, ok := connect()
			if !ok {
				return
			}
			defer c.Close()

			prev, existed, err := c.Set(args[0], args[1])
			if err != nil {
				output.Error(fmt.Sprintf("Set failed: %v", err))
				return
			}
			// The server answers with the previous value, if any.
			printValue(prev, existed)
		},
	}
}
