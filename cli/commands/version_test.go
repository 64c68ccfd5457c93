package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommand(t *testing.T) {
	out := captureOutput(func() {
		executeCommand(t, NewVersionCommand(), nil)
	})
	assert.Contains(t, out, "netkv-cli version")
	assert.Contains(t, out, Version)
}
