// Package cache provides the bounded, short-TTL store for raw upstream
// schedule payloads. The cache is a latency optimization only; every
// caller must produce correct output when it misses.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Store is the key-value contract handlers depend on. Implementations
// degrade to a miss rather than failing callers.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// Key builds the composite cache key for a schedule lookup.
func Key(date, districtID string) string {
	return "schedule_" + date + "_" + districtID
}

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// Memory is a mutex-guarded in-process Store with a fixed TTL and
// capacity. Entries past their TTL read as absent; inserting beyond
// capacity evicts the oldest insertion.
type Memory struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = oldest insertion

	now func() time.Time
}

// NewMemory creates a Memory store with the given TTL and maximum entry
// count.
func NewMemory(ttl time.Duration, capacity int) *Memory {
	return &Memory{
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		now:      time.Now,
	}
}

// Get returns the value for key if present and not expired.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*memoryEntry)
	if m.now().After(entry.expiresAt) {
		m.order.Remove(el)
		delete(m.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key, replacing any previous entry and evicting
// the oldest insertion when over capacity.
func (m *Memory) Set(_ context.Context, key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[key]; ok {
		m.order.Remove(el)
		delete(m.entries, key)
	}

	for m.capacity > 0 && m.order.Len() >= m.capacity {
		oldest := m.order.Front()
		m.order.Remove(oldest)
		delete(m.entries, oldest.Value.(*memoryEntry).key)
	}

	el := m.order.PushBack(&memoryEntry{
		key:       key,
		value:     value,
		expiresAt: m.now().Add(m.ttl),
	})
	m.entries[key] = el
}

// Len reports the current entry count, expired entries included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}
