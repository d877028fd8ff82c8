package ratelimit

import (
	"encoding/json"
	"os"
	"sync"
)

// Store persists the global request window. LoadWindow and SaveWindow
// must only be called inside the function passed to WithLock, which
// serializes the whole read-prune-append-write cycle.
type Store interface {
	LoadWindow() ([]int64, error)
	SaveWindow([]int64) error
	WithLock(fn func() error) error
}

// FileStore keeps the window as a JSON array of unix seconds in a single
// file, the file being the sole source of truth. The mutex serializes
// cycles within one process; the limiter assumes one process per
// deployment for the file backend.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadWindow treats a missing or corrupt file as an empty window.
func (s *FileStore) LoadWindow() ([]int64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := os.WriteFile(s.path, []byte("[]"), 0644); werr != nil {
				return nil, werr
			}
		}
		return nil, nil
	}
	var window []int64
	if err := json.Unmarshal(data, &window); err != nil {
		return nil, nil
	}
	return window, nil
}

func (s *FileStore) SaveWindow(window []int64) error {
	if window == nil {
		window = []int64{}
	}
	data, err := json.Marshal(window)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *FileStore) WithLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// MemoryStore keeps the window in process memory. Useful for tests and
// for deployments that accept losing the window on restart.
type MemoryStore struct {
	mu     sync.Mutex
	window []int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadWindow() ([]int64, error) {
	out := make([]int64, len(s.window))
	copy(out, s.window)
	return out, nil
}

func (s *MemoryStore) SaveWindow(window []int64) error {
	s.window = make([]int64, len(window))
	copy(s.window, window)
	return nil
}

func (s *MemoryStore) WithLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
