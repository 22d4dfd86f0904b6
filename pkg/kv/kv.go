package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a minimal string key-value store. It backs the persisted auth
// session the same way browser local storage backs the original client:
// implementations can be in-memory or file-backed.
type Store interface {
	// Get retrieves a value. Returns the value and true if the key exists.
	Get(key string) (string, bool)

	// Set stores a value under the given key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes a key. Deleting a missing key is a no-op.
	Delete(key string) error
}

// MemoryStore is a thread-safe in-memory Store.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

// FileStore persists its contents as a JSON object to a single file so the
// stored session survives process restarts. Every write rewrites the file;
// the data set is a handful of keys, so this stays cheap.
type FileStore struct {
	mu    sync.Mutex
	path  string
	items map[string]string
}

// NewFileStore opens (or creates) a file-backed store at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:  path,
		items: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.items); err != nil {
			return nil, fmt.Errorf("failed to parse store file: %w", err)
		}
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.items[key]
	return value, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return s.flush()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
