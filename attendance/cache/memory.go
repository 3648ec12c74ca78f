// Package cache provides attendance.Cache implementations.
package cache

import (
	"sync"

	"github.com/warp/attendance-engine/attendance"
)

// DefaultMaxEntries bounds a Memory cache created with a non-positive size.
const DefaultMaxEntries = 10000

// =============================================================================
// MEMORY CACHE - Bounded in-process map
// =============================================================================

// Memory keeps entries in insertion order. When full, the oldest half is
// dropped before the next insert.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]attendance.ClassificationResult
	order      []string
	maxEntries int
	evictions  int
}

func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Memory{
		entries:    make(map[string]attendance.ClassificationResult),
		maxEntries: maxEntries,
	}
}

func (m *Memory) Get(key string) (attendance.ClassificationResult, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.entries[key]
	return res, ok
}

// Put stores value. Overwriting an existing key keeps its age.
func (m *Memory) Put(key string, value attendance.ClassificationResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; ok {
		m.entries[key] = value
		return
	}
	if len(m.order) >= m.maxEntries {
		m.evictLocked()
	}
	m.entries[key] = value
	m.order = append(m.order, key)
}

// evictLocked drops the oldest half, at least one entry.
func (m *Memory) evictLocked() {
	drop := len(m.order) / 2
	if drop == 0 {
		drop = len(m.order)
	}
	for _, key := range m.order[:drop] {
		delete(m.entries, key)
	}
	m.order = append([]string(nil), m.order[drop:]...)
	m.evictions++
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]attendance.ClassificationResult)
	m.order = nil
}

// Len is the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Evictions counts how many times the cache has shed its oldest half.
func (m *Memory) Evictions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.evictions
}

// =============================================================================
// DISABLED CACHE
// =============================================================================

// Disabled never stores anything. Useful to run an Engine uncached while
// still exercising the cache path.
type Disabled struct{}

func (Disabled) Get(string) (attendance.ClassificationResult, bool) {
	return attendance.ClassificationResult{}, false
}
func (Disabled) Put(string, attendance.ClassificationResult) {}
func (Disabled) Clear()                                      {}

var (
	_ attendance.Cache = (*Memory)(nil)
	_ attendance.Cache = Disabled{}
)
