package jsonsync

import (
	"errors"
	"io/fs"
	"os"

	"github.com/unkn0wn-root/jsonsync/serializer"
)

// Load reads and decodes the snapshot file at path. A missing file or a
// zero-length file yields an empty map, not an error - first run and a crash
// between create and write are both legitimate states.
func Load[K comparable, V any](path string, s serializer.Serializer[K, V]) (map[K]V, error) {
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return make(map[K]V), nil
	case err != nil:
		return nil, wrapIO("read", path, err)
	case len(b) == 0:
		return make(map[K]V), nil
	}
	m, err := s.Decode(b)
	if err != nil {
		return nil, wrapDecode(path, err)
	}
	return m, nil
}

// AtomicWrite writes data to a sibling temp file (path + ".tmp") and renames
// it over path. Any observer of path sees either the previous complete
// content or the new complete content, never a partial write - as far as the
// file system's rename is atomic. POSIX file systems and NTFS are fine; FAT32
// and some network shares make no such promise, and nothing here compensates
// with cross-process locking.
//
// The temp file is renamed away on success but may be left behind if the
// process dies between write and rename; cleaning that up is the operator's
// call.
func AtomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return wrapIO("write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return wrapIO("rename", tmp, err)
	}
	return nil
}
