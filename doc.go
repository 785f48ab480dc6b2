// Package jsonsync implements a persistent, JSON-backed key-value store with
// pluggable concurrent map backends and configurable flush policies.
//
// Components:
//   - backend.Backend[K, V]: a concurrent map contract; bring your own or use
//     the built-in ShardMap (lock-striped) or MutexMap (single lock).
//   - serializer.Serializer[K, V]: (de)serializes map snapshots <-> []byte.
//     JSON by default; CBOR and msgpack included.
//   - FlushPolicy: decides when memory is mirrored to disk. Immediate writes
//     after every mutation, Async runs a background worker on a timer, Manual
//     leaves it to the caller.
//
// Quick start:
//
//	db, err := jsonsync.Open[string, int]("db.json")
//	if err != nil { ... }
//	defer db.Close()
//	db.Insert("hello", 1)
//	db.Flush()
//
// Every flush serializes the full map snapshot and writes it through a temp
// file plus rename, so readers of the target path never observe a partial
// file. The in-memory map is always the authoritative live state; the file is
// a possibly-stale snapshot whose staleness window is bounded by the policy.
//
// Single-process only. If multiple processes open the same file they will
// clobber each other. Use advisory file locking or a real database for
// multi-process access.
package jsonsync
