package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/netkv/netkv/pkg/config"
	"github.com/netkv/netkv/protocol"
	"github.com/netkv/netkv/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setupDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netkv.json")
	db := NewDB(store.New(), &config.Config{StoragePath: path}, zaptest.NewLogger(t))
	t.Cleanup(db.Close)
	return db, path
}

func ok(value string) protocol.Response {
	return protocol.OkValue(value)
}

func TestDB_EndToEndScenario(t *testing.T) {
	t.Parallel()
	db, _ := setupDB(t)

	assert.Equal(t, protocol.OkEmpty(), db.Execute(protocol.Command{Op: protocol.OpSet, Key: "a", Value: "1"}))
	assert.Equal(t, ok("1"), db.Execute(protocol.Command{Op: protocol.OpSet, Key: "a", Value: "2"}))
	assert.Equal(t, ok("2"), db.Execute(protocol.Command{Op: protocol.OpGet, Key: "a"}))
	assert.Equal(t, ok("2"), db.Execute(protocol.Command{Op: protocol.OpDelete, Key: "a"}))
	assert.Equal(t, ok("false"), db.Execute(protocol.Command{Op: protocol.OpExists, Key: "a"}))
	assert.Equal(t, protocol.Count(0), db.Execute(protocol.Command{Op: protocol.OpLen}))
}

func TestDB_KeysAndClear(t *testing.T) {
	t.Parallel()
	db, _ := setupDB(t)

	db.Execute(protocol.Command{Op: protocol.OpSet, Key: "a", Value: "1"})
	db.Execute(protocol.Command{Op: protocol.OpSet, Key: "b", Value: "2"})

	resp := db.Execute(protocol.Command{Op: protocol.OpKeys})
	assert.Equal(t, protocol.KindKeyList, resp.Kind)
	assert.ElementsMatch(t, []string{"a", "b"}, resp.Keys)

	assert.Equal(t, protocol.OkEmpty(), db.Execute(protocol.Command{Op: protocol.OpClear}))
	assert.Equal(t, protocol.Count(0), db.Execute(protocol.Command{Op: protocol.OpLen}))

	// health check is independent of store content
	assert.Equal(t, protocol.Pong(), db.Execute(protocol.Command{Op: protocol.OpPing}))
}

func TestDB_MutationsAreWrittenThrough(t *testing.T) {
	t.Parallel()
	db, path := setupDB(t)

	db.Execute(protocol.Command{Op: protocol.OpGet, Key: "a"})
	db.Execute(protocol.Command{Op: protocol.OpPing})
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Read-only commands must not create a snapshot")

	db.Execute(protocol.Command{Op: protocol.OpSet, Key: "a", Value: "1"})

	loaded, err := store.Load(path)
	require.NoError(t, err)
	value, present := loaded.Get("a")
	assert.True(t, present)
	assert.Equal(t, "1", value, "The snapshot must reflect the mutation before the response returns")
}

func TestDB_SaveFailureDoesNotChangeResponse(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing-subdir", "netkv.json")
	db := NewDB(store.New(), &config.Config{StoragePath: path}, zaptest.NewLogger(t))
	t.Cleanup(db.Close)

	resp := db.Execute(protocol.Command{Op: protocol.OpSet, Key: "a", Value: "1"})
	assert.Equal(t, protocol.OkEmpty(), resp,
		"A failed save is logged, not surfaced: the in-memory mutation already happened")

	assert.Equal(t, ok("1"), db.Execute(protocol.Command{Op: protocol.OpGet, Key: "a"}))
}

func TestDB_ConcurrentSetsLoseNothing(t *testing.T) {
	t.Parallel()
	db, path := setupDB(t)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := db.Execute(protocol.Command{
				Op:    protocol.OpSet,
				Key:   fmt.Sprintf("key-%d", i),
				Value: fmt.Sprintf("value-%d", i),
			})
			assert.Equal(t, protocol.KindOk, resp.Kind)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, protocol.Count(n), db.Execute(protocol.Command{Op: protocol.OpLen}))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, n, loaded.Len(), "The final snapshot must contain every acknowledged write")
}

func TestDB_UnknownOp(t *testing.T) {
	t.Parallel()
	db, _ := setupDB(t)

	resp := db.Execute(protocol.Command{Op: "Rename"})
	assert.Equal(t, protocol.KindError, resp.Kind)
}

func TestDB_ExecuteAfterClose(t *testing.T) {
	t.Parallel()
	db, _ := setupDB(t)
	db.Close()

	resp := db.Execute(protocol.Command{Op: protocol.OpPing})
	assert.Equal(t, protocol.KindError, resp.Kind)

	db.Close() // idempotent
}
