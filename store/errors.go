package store

import "errors"

var (
	// ErrSnapshotDecode is returned when a snapshot file cannot be parsed.
	ErrSnapshotDecode = errors.New("invalid snapshot")

	// ErrSnapshotRead is returned when a snapshot file exists but cannot be read.
	ErrSnapshotRead = errors.New("snapshot read failed")

	// ErrSnapshotWrite is returned when a snapshot cannot be written to disk.
	ErrSnapshotWrite = errors.New("snapshot write failed")
)
