package jsonsync

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/unkn0wn-root/jsonsync/serializer"
)

func TestLoadMissingFileIsEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	m, err := Load(path, serializer.JSON[string, int]{})
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected empty map, got %v", m)
	}
}

func TestLoadZeroLengthFileIsEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path, serializer.JSON[string, int]{})
	if err != nil || len(m) != 0 {
		t.Fatalf("Load empty: m=%v err=%v", m, err)
	}
}

func TestLoadCorruptBytesClassifiesDeserialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"a":`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, serializer.JSON[string, int]{})
	if !errors.Is(err, ErrDeserialize) {
		t.Fatalf("want ErrDeserialize, got %v", err)
	}
}

func TestLoadRoundtripsAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	ser := serializer.JSON[string, int]{}

	b, err := ser.Encode(map[string]int{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(path, b); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}

	m, err := Load(path, ser)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m["a"] != 1 || m["b"] != 2 || len(m) != 2 {
		t.Fatalf("round trip mismatch: %v", m)
	}
}

func TestAtomicWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	if err := AtomicWrite(path, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temp file left behind: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "db.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

func TestAtomicWriteOverwritesCompletely(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := AtomicWrite(path, []byte(`{"old":"content that is quite long"}`)); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(path, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{}` {
		t.Fatalf("stale bytes after overwrite: %q", raw)
	}
}

func TestAtomicWriteIOErrorClassified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	// rename over an existing directory fails
	if err := AtomicWrite(path, []byte(`{}`)); !errors.Is(err, ErrIO) {
		t.Fatalf("want ErrIO, got %v", err)
	}
}
