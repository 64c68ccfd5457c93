package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/netkv/netkv/engine"
	"github.com/netkv/netkv/pkg/config"
	"github.com/netkv/netkv/server"
	"github.com/netkv/netkv/store"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// executeCommand runs the cobra command with given arguments.
// This helper is shared across all test files in the 'commands' package.
func executeCommand(t *testing.T, cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// We only check for cobra errors (arg count), not runtime errors (logged via output.Error)
	err := cmd.Execute()
	assert.NoError(t, err)
}

func captureOutput(f func()) string {
	var buf bytes.Buffer
	stdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = stdout
	buf.ReadFrom(r)
	return buf.String()
}

// startTestServer boots a real server on an ephemeral port and points
// NETKV_ADDR at it for the duration of the test.
func startTestServer(t *testing.T) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	path := filepath.Join(t.TempDir(), "netkv.json")

	db := engine.NewDB(store.New(), &config.Config{StoragePath: path}, logger)
	srv := server.New(db, logger)
	require.NoError(t, srv.Start("127.0.0.1:0"))
	t.Cleanup(func() {
		srv.Stop()
		db.Close()
	})

	t.Setenv("NETKV_ADDR", srv.Addr().String())
}
