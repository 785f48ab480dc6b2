package serializer

import "fmt"

// Limit wraps another serializer to enforce a maximum allowed payload size at
// Decode time. Encode is forwarded to Inner unchanged. If MaxDecode <= 0,
// size limiting is disabled.
//
// Typical use: refuse to parse a store file that has grown past what the
// application considers sane, instead of burning memory on it.
type Limit[K comparable, V any] struct {
	// Inner is the underlying serializer being wrapped. It must be set.
	Inner Serializer[K, V]
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload for Decode. If the payload exceeds MaxDecode, Decode returns an
	// error without invoking Inner.
	MaxDecode int
}

func (s Limit[K, V]) Encode(m map[K]V) ([]byte, error) { return s.Inner.Encode(m) }

func (s Limit[K, V]) Decode(b []byte) (map[K]V, error) {
	if s.MaxDecode > 0 && len(b) > s.MaxDecode {
		return nil, fmt.Errorf("payload too large: %d > %d", len(b), s.MaxDecode)
	}
	return s.Inner.Decode(b)
}
