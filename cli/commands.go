package cli

import (
	"github.com/netkv/netkv/cli/commands"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// Module provides the CLI for fx.Populate in the client binary.
var Module = fx.Provide(NewCLI)

type CLI struct {
	root *cobra.Command
}

func NewCLI() *CLI {
	cli := &CLI{}

	rootCmd := &cobra.Command{
		Use:   "netkv-cli",
		Short: "A networked key-value store CLI",
		Long:  "netkv-cli is a command-line client for the netkv key-value store",
	}

	// Register the shared --addr flag and all subcommands
	commands.RegisterFlags(rootCmd)
	registry := commands.NewCommandRegistry()
	registry.RegisterCommands(rootCmd)

	cli.root = rootCmd

	return cli
}

func (c *CLI) Run() error {
	return c.root.Execute()
}
