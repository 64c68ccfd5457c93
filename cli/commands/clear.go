package commands

import (
	"fmt"

	"github.com/netkv/netkv/cli/output"
	"github.com/spf13/cobra"
)

// NewClearCommand creates a new clear command
func NewClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all keys",
		Run: func(cmd *cobra.Command, args []string) {
			c, ok := connect()
			if !ok {
				return
			}
			defer c.Close()

			if err := c.Clear(); err != nil {
				output.Error(fmt.Sprintf("Clear failed: %v", err))
				return
			}
			output.Success("Store cleared")
		},
	}
}
