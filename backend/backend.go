// Package backend defines the concurrent map contract a jsonsync store runs
// on, plus two ready-to-use implementations.
//
// Implementations MUST be safe for concurrent use and must work with owned
// values: Get, Remove and Snapshot hand out copies, never references into
// internal storage, so no caller can mutate the map through a returned value.
// Duplicate-key semantics are always "last insert wins"; no ordering is
// guaranteed anywhere.
package backend

// Entry is a single key-value pair from a snapshot.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Backend is the capability contract a concurrent map must satisfy to back a
// store. The store itself never takes a lock around these calls, so whatever
// concurrency guarantees an implementation documents are exactly what store
// callers get.
type Backend[K comparable, V any] interface {
	// Insert adds or overwrites a pair, returning the previous value if the
	// key was present.
	Insert(key K, value V) (prev V, replaced bool)

	// Get looks up a value by key, returning an owned copy.
	Get(key K) (V, bool)

	// Remove deletes a key, returning its value if it was present.
	Remove(key K) (V, bool)

	// Snapshot returns a point-in-time view of all entries. It must not hold
	// a lock that would block concurrent writers for the full iteration; a
	// slightly stale view under concurrent mutation is acceptable.
	Snapshot() []Entry[K, V]

	// Len reports the number of entries.
	Len() int

	// Contains reports whether key exists, without cloning its value when the
	// implementation can avoid it.
	Contains(key K) bool

	// Clear removes all entries. Semantics must match removing every key one
	// by one; performance should be better than that where possible.
	Clear()
}

// ContainsViaGet derives Contains from Get for backends with no cheaper
// membership test.
func ContainsViaGet[K comparable, V any](b Backend[K, V], key K) bool {
	_, ok := b.Get(key)
	return ok
}

// ClearViaSnapshot derives Clear from Snapshot plus Remove. Slow - entries
// that appear concurrently with the snapshot survive - but semantically a
// valid fallback for backends without a native bulk clear.
func ClearViaSnapshot[K comparable, V any](b Backend[K, V]) {
	for _, e := range b.Snapshot() {
		b.Remove(e.Key)
	}
}
