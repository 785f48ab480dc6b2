// Package serializer converts map snapshots to and from bytes for
// persistence.
//
// Implementations MUST round-trip: Decode(Encode(m)) has to produce a map
// equal to m for any finite mapping of encodable keys and values. Member
// order carries no meaning in either direction.
package serializer

// Serializer encodes/decodes a flat key-value snapshot to []byte for storage.
type Serializer[K comparable, V any] interface {
	Encode(map[K]V) ([]byte, error)
	Decode([]byte) (map[K]V, error)
}
