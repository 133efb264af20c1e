// Package storage manages the durable collection of assessment protocols
// over an injected key-value capability. Every public operation is a
// self-contained read-modify-write; failures of the underlying substrate
// degrade to empty results or false return values, never panics, so a
// session without working persistence stays usable in memory.
package storage

import "sync"

// Storage keys. The whole protocol collection lives under one key; the
// backup snapshot and the settings document each have their own.
const (
	protocolsKey = "tca_protocols"
	settingsKey  = "tca_app_settings"
	backupKey    = "tca_protocols_backup"
)

// KV is the persistence capability the store is built on. Implementations
// signal failure by returning false or a missing value instead of an
// error; the store logs diagnostics and carries on.
type KV interface {
	// Get returns the value under key and whether it was present
	Get(key string) (string, bool)
	// Set stores value under key and reports success
	Set(key, value string) bool
	// Remove deletes the value under key
	Remove(key string)
}

// MemoryKV is an in-process KV used for tests and as the degraded mode
// when the SQLite substrate cannot be opened.
type MemoryKV struct {
	mu     sync.RWMutex
	data   map[string]string
	frozen bool
}

// NewMemoryKV creates an empty in-memory key-value store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the value under key
func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Set stores value under key. Returns false when the store is frozen.
func (m *MemoryKV) Set(key, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen {
		return false
	}
	m.data[key] = value
	return true
}

// Remove deletes the value under key
func (m *MemoryKV) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frozen {
		return
	}
	delete(m.data, key)
}

// Freeze makes every subsequent write fail, simulating a full or disabled
// substrate in tests
func (m *MemoryKV) Freeze() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frozen = true
}
