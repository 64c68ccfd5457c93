package commands

import (
	"fmt"
	"strconv"

	"github.com/netkv/netkv/cli/output"
	"github.com/spf13/cobra"
)

// NewLenCommand creates a new len command
func NewLenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "len",
		Short: "Count the stored keys",
		Run: func(cmd *cobra.Command, args []string) {
			c, ok := connect()
			if !ok {
				return
			}
			defer c.Close()

			count, err := c.Len()
			if err != nil {
				output.Error(fmt.Sprintf("Len failed: %v", err))
				return
			}
			output.Plain(strconv.Itoa(count))
		},
	}
}
