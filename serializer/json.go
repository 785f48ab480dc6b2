package serializer

import "encoding/json"

// JSON is the default serializer. It produces a single JSON object keyed by
// the string form of each key. With Pretty set, output is indented and
// newline-separated; otherwise it is compact.
//
// encoding/json's map key rules apply: keys must be strings, integer types,
// or implement encoding.TextMarshaler.
type JSON[K comparable, V any] struct {
	Pretty bool
}

func (s JSON[K, V]) Encode(m map[K]V) ([]byte, error) {
	if s.Pretty {
		return json.MarshalIndent(m, "", "  ")
	}
	return json.Marshal(m)
}

func (s JSON[K, V]) Decode(b []byte) (map[K]V, error) {
	var m map[K]V
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[K]V)
	}
	return m, nil
}
