package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCLI(t *testing.T) {
	cli := NewCLI()
	assert.NotNil(t, cli)
	assert.NotNil(t, cli.root)
	assert.NotEmpty(t, cli.root.Commands())
	assert.NotNil(t, cli.root.PersistentFlags().Lookup("addr"))
}

func TestCLI_RunHelp(t *testing.T) {
	cli := NewCLI()
	cli.root.SetArgs([]string{"--help"})
	assert.NoError(t, cli.Run())
}
