package backend

import (
	"hash/maphash"
	"sync"

	xxhash "github.com/cespare/xxhash/v2"
)

const defaultShardCount = 16

// ShardMap is a lock-striped Backend: keys are hashed across a fixed set of
// shards, each guarded by its own RWMutex. Writers to different shards never
// contend, and Snapshot only ever locks one shard at a time.
//
// This is the default backend the store builder picks.
type ShardMap[K comparable, V any] struct {
	shards []shard[K, V]
	hash   func(K) uint64
	seed   maphash.Seed
}

type shard[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

var _ Backend[string, int] = (*ShardMap[string, int])(nil)

// NewShardMap creates a ShardMap with 16 shards and the runtime's maphash
// over the key's native representation.
func NewShardMap[K comparable, V any]() *ShardMap[K, V] {
	return NewShardMapWith[K, V](defaultShardCount, nil)
}

// NewShardMapWith creates a ShardMap with an explicit shard count and an
// optional hash function. shards is rounded up to at least 1; a nil hash
// falls back to hash/maphash. For string keys, SumString (xxhash) is a good
// explicit choice.
func NewShardMapWith[K comparable, V any](shards int, hash func(K) uint64) *ShardMap[K, V] {
	if shards < 1 {
		shards = 1
	}
	m := &ShardMap[K, V]{
		shards: make([]shard[K, V], shards),
		hash:   hash,
		seed:   maphash.MakeSeed(),
	}
	for i := range m.shards {
		m.shards[i].items = make(map[K]V)
	}
	return m
}

// SumString hashes a string key with xxhash. Faster than maphash for string
// keys while keeping the shard distribution uniform.
func SumString(key string) uint64 {
	return xxhash.Sum64String(key)
}

func (m *ShardMap[K, V]) shardFor(key K) *shard[K, V] {
	var h uint64
	if m.hash != nil {
		h = m.hash(key)
	} else {
		h = maphash.Comparable(m.seed, key)
	}
	return &m.shards[h%uint64(len(m.shards))]
}

func (m *ShardMap[K, V]) Insert(key K, value V) (V, bool) {
	s := m.shardFor(key)
	s.mu.Lock()
	prev, replaced := s.items[key]
	s.items[key] = value
	s.mu.Unlock()
	return prev, replaced
}

func (m *ShardMap[K, V]) Get(key K) (V, bool) {
	s := m.shardFor(key)
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()
	return v, ok
}

func (m *ShardMap[K, V]) Remove(key K) (V, bool) {
	s := m.shardFor(key)
	s.mu.Lock()
	v, ok := s.items[key]
	if ok {
		delete(s.items, key)
	}
	s.mu.Unlock()
	return v, ok
}

// Snapshot walks the shards one at a time, copying each under its read lock.
// Writers to other shards proceed in parallel, so entries mutated during the
// walk may or may not appear - the view is per-shard consistent, not global.
func (m *ShardMap[K, V]) Snapshot() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.Len())
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.RLock()
		for k, v := range s.items {
			out = append(out, Entry[K, V]{Key: k, Value: v})
		}
		s.mu.RUnlock()
	}
	return out
}

func (m *ShardMap[K, V]) Len() int {
	n := 0
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}

func (m *ShardMap[K, V]) Contains(key K) bool {
	s := m.shardFor(key)
	s.mu.RLock()
	_, ok := s.items[key]
	s.mu.RUnlock()
	return ok
}

func (m *ShardMap[K, V]) Clear() {
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		s.items = make(map[K]V)
		s.mu.Unlock()
	}
}
