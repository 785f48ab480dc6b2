package serializer

import "github.com/vmihailenco/msgpack/v5"

// Msgpack serializes snapshots using vmihailenco/msgpack/v5. The zero value
// is ready to use.
//
// Msgpack is compact and fast; be mindful of struct tag differences vs JSON.
// Use `msgpack:"fieldName"` tags on value types if you need explicit control.
type Msgpack[K comparable, V any] struct{}

func (Msgpack[K, V]) Encode(m map[K]V) ([]byte, error) {
	return msgpack.Marshal(m)
}

func (Msgpack[K, V]) Decode(b []byte) (map[K]V, error) {
	var m map[K]V
	if err := msgpack.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[K]V)
	}
	return m, nil
}
