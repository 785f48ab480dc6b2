package jsonsync

import (
	"github.com/unkn0wn-root/jsonsync/backend"
	"github.com/unkn0wn-root/jsonsync/serializer"
)

// Store is a persistent key-value store: a concurrent map in memory, mirrored
// to a snapshot file on disk according to its FlushPolicy.
//
// All operations are safe for concurrent use; the exact concurrency
// guarantees come from whichever backend the store was built with. Each call
// is backend-atomic, but there is no multi-call atomicity - no transactions.
//
// Construct through Open, OpenWithPolicy or NewBuilder; the zero value is not
// usable.
type Store[K comparable, V any] struct {
	m       backend.Backend[K, V]
	path    string
	ser     serializer.Serializer[K, V]
	policy  FlushPolicy
	trigger chan<- struct{} // non-nil only under an Async policy
	log     Logger
}

// ---- reads ----

// Get returns the value for key, or false if absent.
func (s *Store[K, V]) Get(key K) (V, bool) {
	return s.m.Get(key)
}

// ContainsKey reports whether key exists. Avoids cloning the value when the
// backend supports it.
func (s *Store[K, V]) ContainsKey(key K) bool {
	return s.m.Contains(key)
}

// Len returns the number of entries.
func (s *Store[K, V]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the store has no entries.
func (s *Store[K, V]) IsEmpty() bool {
	return s.Len() == 0
}

// Entries returns a snapshot of all key-value pairs, in no particular order.
func (s *Store[K, V]) Entries() []backend.Entry[K, V] {
	return s.m.Snapshot()
}

// Keys returns a snapshot of all keys.
func (s *Store[K, V]) Keys() []K {
	snap := s.m.Snapshot()
	out := make([]K, len(snap))
	for i, e := range snap {
		out[i] = e.Key
	}
	return out
}

// Values returns a snapshot of all values.
func (s *Store[K, V]) Values() []V {
	snap := s.m.Snapshot()
	out := make([]V, len(snap))
	for i, e := range snap {
		out[i] = e.Value
	}
	return out
}

// Path returns the location of the backing snapshot file.
func (s *Store[K, V]) Path() string {
	return s.path
}

// ---- writes ----

// Insert adds or overwrites a key-value pair, returning the previous value if
// the key existed. Under the Immediate policy a flush failure is returned
// here even though the map already changed; see FlushPolicy.
func (s *Store[K, V]) Insert(key K, value V) (V, bool, error) {
	prev, replaced := s.m.Insert(key, value)
	return prev, replaced, s.notifyMutation()
}

// Remove deletes a key, returning its value if it was present.
func (s *Store[K, V]) Remove(key K) (V, bool, error) {
	prev, ok := s.m.Remove(key)
	return prev, ok, s.notifyMutation()
}

// Clear drops all entries.
func (s *Store[K, V]) Clear() error {
	s.m.Clear()
	return s.notifyMutation()
}

// Extend bulk-inserts entries. The flush policy runs once at the end, not
// once per entry, so batch loads do not cause N redundant writes or nudges.
func (s *Store[K, V]) Extend(entries []backend.Entry[K, V]) error {
	for _, e := range entries {
		s.m.Insert(e.Key, e.Value)
	}
	return s.notifyMutation()
}

// ExtendMap is Extend for callers that already hold a map.
func (s *Store[K, V]) ExtendMap(m map[K]V) error {
	for k, v := range m {
		s.m.Insert(k, v)
	}
	return s.notifyMutation()
}

// Update mutates the value at key in place via fn. Returns false (and does
// nothing) when the key does not exist.
//
// Heads up: this is a get-then-put, so there is a window where a concurrent
// writer's change to the same key gets overwritten. Fine for single-writer
// setups; do not rely on it for atomic read-modify-write.
func (s *Store[K, V]) Update(key K, fn func(*V)) (bool, error) {
	v, ok := s.m.Get(key)
	if !ok {
		return false, nil
	}
	fn(&v)
	s.m.Insert(key, v)
	return true, s.notifyMutation()
}

// GetOrInsert returns the existing value for key, or inserts def and returns
// it. The flush policy only runs on the insert path.
func (s *Store[K, V]) GetOrInsert(key K, def V) (V, error) {
	if v, ok := s.m.Get(key); ok {
		return v, nil
	}
	s.m.Insert(key, def)
	return def, s.notifyMutation()
}

// GetOrInsertWith is GetOrInsert with a lazily-computed default: fn only runs
// when the key is actually missing.
func (s *Store[K, V]) GetOrInsertWith(key K, fn func() V) (V, error) {
	if v, ok := s.m.Get(key); ok {
		return v, nil
	}
	v := fn()
	s.m.Insert(key, v)
	return v, s.notifyMutation()
}

// ---- persistence ----

// Flush synchronously writes the current map contents to disk (temp file plus
// rename). Idempotent and safe to call at any time, under any policy.
func (s *Store[K, V]) Flush() error {
	return flushSnapshot(s.m, s.path, s.ser)
}

// notifyMutation runs the flush policy after a mutating call.
func (s *Store[K, V]) notifyMutation() error {
	switch s.policy.kind {
	case policyImmediate:
		return s.Flush()
	case policyAsync:
		// Best-effort: if the worker is mid-flush the nudge is dropped and
		// the next timer tick picks up the latest state.
		select {
		case s.trigger <- struct{}{}:
		default:
		}
	}
	return nil
}

// flushSnapshot serializes one coherent snapshot of the backend and writes it
// atomically. The snapshot may be stale relative to mutations racing with the
// encode; the guarantee is "some recent consistent state", not "state at the
// instant of the call".
func flushSnapshot[K comparable, V any](m backend.Backend[K, V], path string, ser serializer.Serializer[K, V]) error {
	snap := m.Snapshot()
	data := make(map[K]V, len(snap))
	for _, e := range snap {
		data[e.Key] = e.Value
	}
	b, err := ser.Encode(data)
	if err != nil {
		return wrapEncode(err)
	}
	return AtomicWrite(path, b)
}
