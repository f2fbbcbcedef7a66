package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// Memory is an in-process cache bounded by maxEntries. A zero ttl keeps entries until evicted.
type Memory struct {
	mu         sync.Mutex
	maxEntries int
	items      map[string]memoryEntry
	now        func() time.Time
}

func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	return &Memory{
		maxEntries: maxEntries,
		items:      map[string]memoryEntry{},
		now:        time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.items[key]
	if !ok {
		return nil, false
	}
	if !entry.expires.IsZero() && m.now().After(entry.expires) {
		delete(m.items, key)
		return nil, false
	}
	return append([]byte(nil), entry.value...), true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; !exists && len(m.items) >= m.maxEntries {
		m.evictLocked()
	}

	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expires = m.now().Add(ttl)
	}
	m.items[key] = entry
	return nil
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// evictLocked drops expired entries, then the entry closest to expiry if the cache is still full.
func (m *Memory) evictLocked() {
	now := m.now()
	for key, entry := range m.items {
		if !entry.expires.IsZero() && now.After(entry.expires) {
			delete(m.items, key)
		}
	}
	if len(m.items) < m.maxEntries {
		return
	}

	var victim string
	var victimExpires time.Time
	for key, entry := range m.items {
		switch {
		case victim == "":
		case entry.expires.IsZero():
			continue
		case victimExpires.IsZero() || entry.expires.Before(victimExpires):
		default:
			continue
		}
		victim, victimExpires = key, entry.expires
	}
	delete(m.items, victim)
}
