package store

import (
	"time"
)

// Store is the in-memory key-value mapping plus its creation and
// last-modified timestamps (unix seconds).
//
// Store is not safe for concurrent use. All access is serialized by the
// engine's command loop; the Store itself stays a plain data structure.
type Store struct {
	data      map[string]string
	createdAt int64
	updatedAt int64
}

// New creates an empty Store with both timestamps set to now.
func New() *Store {
	now := time.Now().Unix()
	return &Store{
		data:      make(map[string]string),
		createdAt: now,
		updatedAt: now,
	}
}

// Get retrieves a value by key. No side effects.
func (s *Store) Get(key string) (string, bool) {
	value, ok := s.data[key]
	return value, ok
}

// Set inserts or overwrites a key and returns the previous value, if any.
// Always advances the updated timestamp.
func (s *Store) Set(key, value string) (string, bool) {
	s.touch()
	prev, existed := s.data[key]
	s.data[key] = value
	return prev, existed
}

// Delete removes a key and returns the value it held, if any. The updated
// timestamp advances even when the key was absent, matching Set and Clear.
func (s *Store) Delete(key string) (string, bool) {
	s.touch()
	prev, existed := s.data[key]
	delete(s.data, key)
	return prev, existed
}

// Exists reports whether key is currently present. No side effects.
func (s *Store) Exists(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Keys returns a snapshot of all current keys in unspecified order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	return keys
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.data)
}

// Clear removes all entries and advances the updated timestamp.
func (s *Store) Clear() {
	s.touch()
	s.data = make(map[string]string)
}

// CreatedAt returns the unix second at which the store was created.
func (s *Store) CreatedAt() int64 {
	return s.createdAt
}

// UpdatedAt returns the unix second of the last mutating operation.
func (s *Store) UpdatedAt() int64 {
	return s.updatedAt
}

func (s *Store) touch() {
	s.updatedAt = time.Now().Unix()
}
