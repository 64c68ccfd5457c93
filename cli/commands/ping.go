package commands

import (
	"fmt"

	"github.com/netkv/netkv/cli/output"
	"github.com/spf13/cobra"
)

// NewPingCommand creates a new ping command
func NewPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Health-check the server",
		Run: func(cmd *cobra.Command, args []string) {
			c, ok := connect()
			if !ok {
				return
			}
			defer c.Close()

			if err := c.Ping(); err != nil {
				output.Error(fmt.Sprintf("Ping failed: %v", err))
				return
			}
			output.Plain("PONG")
		},
	}
}
