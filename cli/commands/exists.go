package commands

import (
	"fmt"
	"strconv"

	"github.com/netkv/netkv/cli/output"
	"github.com/spf13/cobra"
)

// NewExistsCommand creates a new exists command
func NewExistsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <key>",
		Short: "Check if a key exists",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, ok := connect()
			if !ok {
				return
			}
			defer c.Close()

			exists, err := c.Exists(args[0])
			if err != nil {
				output.Error(fmt.Sprintf("Exists failed: %v", err))
				return
			}
			output.Plain(strconv.FormatBool(exists))
		},
	}
}
