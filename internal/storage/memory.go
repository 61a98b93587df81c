package storage

import "sync"

// Memory is an in-process scalar store. It stands in for the database when
// the file cannot be opened, so the high score lasts for the session only.
type Memory struct {
	mu     sync.RWMutex
	values map[string]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

// Get returns the value for key and whether it was set.
func (m *Memory) Get(key string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key. It never fails.
func (m *Memory) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
