package commands

import (
	"fmt"

	"github.com/netkv/netkv/cli/output"
	"github.com/spf13/cobra"
)

// NewKeysCommand creates a new keys command
func NewKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List all keys",
		Run: func(cmd *cobra.Command, args []string) {
			c, ok := connect()
			if !ok {
				return
			}
			defer c.Close()

			keys, err := c.Keys()
			if err != nil {
				output.Error(fmt.Sprintf("Keys failed: %v", err))
				return
			}
			if len(keys) == 0 {
				output.Plain("(empty)")
				return
			}
			for _, key := range keys {
				output.Plain(key)
			}
		},
	}
}
