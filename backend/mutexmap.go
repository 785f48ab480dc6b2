package backend

import "sync"

// MutexMap is the simplest Backend: one map behind one RWMutex. Writers
// serialize on the lock, readers share it. Fine for tests and low-contention
// workloads; use ShardMap when many goroutines hammer the store.
type MutexMap[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

var _ Backend[string, int] = (*MutexMap[string, int])(nil)

func NewMutexMap[K comparable, V any]() *MutexMap[K, V] {
	return &MutexMap[K, V]{items: make(map[K]V)}
}

func (m *MutexMap[K, V]) Insert(key K, value V) (V, bool) {
	m.mu.Lock()
	prev, replaced := m.items[key]
	m.items[key] = value
	m.mu.Unlock()
	return prev, replaced
}

func (m *MutexMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	v, ok := m.items[key]
	m.mu.RUnlock()
	return v, ok
}

func (m *MutexMap[K, V]) Remove(key K) (V, bool) {
	m.mu.Lock()
	v, ok := m.items[key]
	if ok {
		delete(m.items, key)
	}
	m.mu.Unlock()
	return v, ok
}

// Snapshot copies all entries under a single read lock. The lock is held only
// for the copy, not for the caller's iteration.
func (m *MutexMap[K, V]) Snapshot() []Entry[K, V] {
	m.mu.RLock()
	out := make([]Entry[K, V], 0, len(m.items))
	for k, v := range m.items {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	m.mu.RUnlock()
	return out
}

func (m *MutexMap[K, V]) Len() int {
	m.mu.RLock()
	n := len(m.items)
	m.mu.RUnlock()
	return n
}

func (m *MutexMap[K, V]) Contains(key K) bool {
	m.mu.RLock()
	_, ok := m.items[key]
	m.mu.RUnlock()
	return ok
}

func (m *MutexMap[K, V]) Clear() {
	m.mu.Lock()
	m.items = make(map[K]V)
	m.mu.Unlock()
}
