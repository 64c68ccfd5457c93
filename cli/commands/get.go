package commands

import (
	"fmt"

	"github.com/netkv/netkv/cli/output"
	"github.com/spf13/cobra"
)

// NewGetCommand creates a new get command
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a value by key",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, ok := connect()
			if !ok {
				return
			}
			defer c.Close()

			value, present, err := c.Get(args[0])
			if err != nil {
				output.Error(fmt.Sprintf("Get failed: %v", err))
				return
			}
			printValue(value, present)
		},
	}
}
