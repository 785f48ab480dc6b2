package jsonsync

import (
	"errors"
	"fmt"
)

// Classification sentinels for everything that can go wrong in the store.
// Every error returned by this package wraps exactly one of them, so callers
// can branch with errors.Is without parsing messages.
var (
	// ErrIO marks a file system problem (read, write, rename).
	ErrIO = errors.New("jsonsync: i/o error")
	// ErrSerialize marks a failure to encode the map to bytes.
	ErrSerialize = errors.New("jsonsync: serialize error")
	// ErrDeserialize marks bytes that could not be decoded back into a map.
	ErrDeserialize = errors.New("jsonsync: deserialize error")
	// ErrConfig marks invalid construction parameters (path, policy, etc.).
	ErrConfig = errors.New("jsonsync: config error")
)

// wrapIO classifies a file system failure.
func wrapIO(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}

// wrapEncode classifies a serializer Encode failure. Encode can only fail on
// values the encoding does not support, so everything lands under ErrSerialize.
func wrapEncode(err error) error {
	return fmt.Errorf("%w: %w", ErrSerialize, err)
}

// wrapDecode classifies a serializer Decode failure.
func wrapDecode(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDeserialize, path, err)
}

// wrapConfig classifies an invalid construction parameter.
func wrapConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}
