package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netkv/netkv/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestOpen_LoadsExistingSnapshot(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "netkv.json")

	s := New()
	s.Set("hello", "world")
	require.NoError(t, Save(s, path))

	opened := Open(zaptest.NewLogger(t), &config.Config{StoragePath: path})
	value, ok := opened.Get("hello")
	assert.True(t, ok)
	assert.Equal(t, "world", value)
}

func TestOpen_CorruptSnapshotStartsEmpty(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "netkv.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0644))

	opened := Open(zaptest.NewLogger(t), &config.Config{StoragePath: path})
	assert.Equal(t, 0, opened.Len(), "A corrupt snapshot must degrade to an empty store")
}
