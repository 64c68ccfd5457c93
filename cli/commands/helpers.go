package commands

import (
	"fmt"
	"os"

	"github.com/netkv/netkv/cli/output"
	"github.com/netkv/netkv/pkg/client"
	"github.com/netkv/netkv/pkg/config"
	"github.com/spf13/cobra"
)

var addrFlag string

// RegisterFlags binds the shared --addr flag on the root command.
func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&addrFlag, "addr", "",
		"server address (host:port), defaults to NETKV_ADDR or "+config.DefaultAddr)
}

// serverAddr resolves the target address: --addr flag, then NETKV_ADDR,
// then the built-in default.
func serverAddr() string {
	if addrFlag != "" {
		return addrFlag
	}
	if addr := os.Getenv("NETKV_ADDR"); addr != "" {
		return addr
	}
	return config.DefaultAddr
}

// connect dials the server, printing the failure when it cannot.
func connect() (*client.Client, bool) {
	c, err := client.New(serverAddr())
	if err != nil {
		output.Error(fmt.Sprintf("Failed to connect to server at %s: %v", serverAddr(), err))
		return nil, false
	}
	return c, true
}

// printValue prints a value that may be absent, matching the wire's null.
func printValue(value string, present bool) {
	if present {
		output.Plain(value)
		return
	}
	output.Plain("(null)")
}
