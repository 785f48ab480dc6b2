package serializer

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR serializes snapshots using fxamacker/cbor. Unlike JSON it handles
// non-string map keys natively, at the cost of a file you cannot read in an
// editor. The zero value is NOT ready to use. Construct with NewCBOR or
// MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs; otherwise
// PreferredUnsortedEncOptions are used (sensible defaults). Time values are
// encoded as RFC3339Nano.
type CBOR[K comparable, V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Serializer[string, int] = CBOR[string, int]{}

// NewCBOR constructs a CBOR serializer.
//   - Deterministic true uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
func NewCBOR[K comparable, V any](deterministic bool) (CBOR[K, V], error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[K, V]{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[K, V]{}, err
	}
	return CBOR[K, V]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables in tests and examples; avoid in production code paths.
func MustCBOR[K comparable, V any](deterministic bool) CBOR[K, V] {
	s, err := NewCBOR[K, V](deterministic)
	if err != nil {
		panic(err)
	}
	return s
}

func (s CBOR[K, V]) Encode(m map[K]V) ([]byte, error) {
	return s.enc.Marshal(m)
}

func (s CBOR[K, V]) Decode(b []byte) (map[K]V, error) {
	var m map[K]V
	if err := s.dec.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[K]V)
	}
	return m, nil
}
