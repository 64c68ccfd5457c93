package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal counts processed commands, labeled by operation and
	// whether the reply was an error.
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netkv_commands_total",
			Help: "Total number of commands processed",
		},
		[]string{"op", "status"},
	)

	// SnapshotSaveDuration measures the write-through save on the mutation
	// path. Mutation throughput is bounded by this.
	SnapshotSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netkv_snapshot_save_duration_seconds",
			Help:    "Duration of snapshot writes in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// SnapshotSaveFailures counts saves that were logged and swallowed.
	SnapshotSaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netkv_snapshot_save_failures_total",
			Help: "Total number of failed snapshot writes",
		},
	)

	// ActiveConnections tracks currently open client connections.
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "netkv_active_connections",
			Help: "Number of currently open client connections",
		},
	)
)
