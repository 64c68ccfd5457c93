package engine

import (
	"strconv"
	"sync"
	"time"

	"github.com/netkv/netkv/pkg/config"
	"github.com/netkv/netkv/pkg/metrics"
	"github.com/netkv/netkv/protocol"
	"github.com/netkv/netkv/store"
	"go.uber.org/zap"
)

// DB is the command processor. A single goroutine owns the Store and drains
// a request queue, so commands are linearized by construction: no two
// commands ever observe or produce interleaved store state, and the
// write-through save for a mutating command completes (or fails, logged)
// before the next command is dequeued.
type DB struct {
	store    *store.Store
	path     string
	logger   *zap.Logger
	requests chan request
	done     chan struct{}
	stopped  chan struct{}
	once     sync.Once
}

type request struct {
	cmd   protocol.Command
	reply chan protocol.Response
}

// NewDB starts the command loop over the given Store. Mutations are written
// through to path.
func NewDB(s *store.Store, cfg *config.Config, logger *zap.Logger) *DB {
	db := &DB{
		store:    s,
		path:     cfg.StoragePath,
		logger:   logger,
		requests: make(chan request),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go db.run()
	return db
}

// Execute applies one command and returns its response. Safe for concurrent
// use from any number of connection handlers. After Close it returns an
// Error response instead of blocking.
func (db *DB) Execute(cmd protocol.Command) protocol.Response {
	req := request{cmd: cmd, reply: make(chan protocol.Response, 1)}

	select {
	case db.requests <- req:
	case <-db.done:
		return protocol.Errorf("store is shutting down")
	}

	select {
	case resp := <-req.reply:
		status := "ok"
		if resp.Kind == protocol.KindError {
			status = "error"
		}
		metrics.CommandsTotal.WithLabelValues(string(cmd.Op), status).Inc()
		return resp
	case <-db.stopped:
		return protocol.Errorf("store is shutting down")
	}
}

// Close stops the command loop and waits for it to exit. Idempotent.
func (db *DB) Close() {
	db.once.Do(func() { close(db.done) })
	<-db.stopped
}

func (db *DB) run() {
	defer close(db.stopped)
	for {
		select {
		case req := <-db.requests:
			resp, mutated := db.apply(req.cmd)
			if mutated {
				db.persist()
			}
			req.reply <- resp
		case <-db.done:
			return
		}
	}
}

// apply runs one command against the store and reports whether it mutated
// state. Responses follow the dispatch table: Get/Set/Delete answer with
// the (previous) value or null, Exists with a text boolean.
func (db *DB) apply(cmd protocol.Command) (protocol.Response, bool) {
	switch cmd.Op {
	case protocol.OpGet:
		if value, ok := db.store.Get(cmd.Key); ok {
			return protocol.OkValue(value), false
		}
		return protocol.OkEmpty(), false
	case protocol.OpSet:
		prev, existed := db.store.Set(cmd.Key, cmd.Value)
		return previousValue(prev, existed), true
	case protocol.OpDelete:
		prev, existed := db.store.Delete(cmd.Key)
		return previousValue(prev, existed), true
	case protocol.OpExists:
		return protocol.OkValue(strconv.FormatBool(db.store.Exists(cmd.Key))), false
	case protocol.OpKeys:
		return protocol.KeyList(db.store.Keys()), false
	case protocol.OpLen:
		return protocol.Count(db.store.Len()), false
	case protocol.OpClear:
		db.store.Clear()
		return protocol.OkEmpty(), true
	case protocol.OpPing:
		return protocol.Pong(), false
	default:
		return protocol.Errorf("unsupported command %q", string(cmd.Op)), false
	}
}

// persist writes the snapshot after a mutation. A failed save is logged and
// counted but never alters the response already computed from the in-memory
// mutation: durability is best-effort by contract.
func (db *DB) persist() {
	start := time.Now()
	err := store.Save(db.store, db.path)
	metrics.SnapshotSaveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SnapshotSaveFailures.Inc()
		db.logger.Error("Failed to save snapshot",
			zap.String("path", db.path), zap.Error(err))
	}
}

func previousValue(prev string, existed bool) protocol.Response {
	if existed {
		return protocol.OkValue(prev)
	}
	return protocol.OkEmpty()
}
