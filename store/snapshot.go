package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// snapshot is the on-disk shape of a Store: one JSON document holding the
// full mapping and both timestamps.
type snapshot struct {
	Data      map[string]string `json:"data"`
	CreatedAt int64             `json:"created_at"`
	UpdatedAt int64             `json:"updated_at"`
}

// Load reads a Store snapshot from path. A missing file is not an error:
// it yields a fresh empty Store, so a first run starts clean. A file that
// exists but cannot be read or parsed is an error; the caller decides
// whether that is fatal.
func Load(path string) (*Store, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSnapshotRead, err)
	}

	var snap snapshot
	if err := json.Unmarshal(contents, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotDecode, err)
	}
	if snap.Data == nil {
		snap.Data = make(map[string]string)
	}

	return &Store{
		data:      snap.Data,
		createdAt: snap.CreatedAt,
		updatedAt: snap.UpdatedAt,
	}, nil
}

// Save writes the full Store to path as one JSON document. The write goes
// to a temp file in the same directory followed by a rename, so an existing
// snapshot is never left truncated by a crash mid-write.
func Save(s *Store, path string) error {
	contents, err := json.MarshalIndent(snapshot{
		Data:      s.data,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotWrite, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(contents); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSnapshotWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSnapshotWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSnapshotWrite, err)
	}
	return nil
}
