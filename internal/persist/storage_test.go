package persist

import (
	"os"
	"path/filepath"
	"testing"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()

	if _, ok, err := s.Get("k"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}
	if err := s.Set("k", []byte("one")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", []byte("two")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok || string(v) != "two" {
		t.Fatalf("Get = %q, %v, %v; want \"two\"", v, ok, err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete twice: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("Get after Delete reported a value")
	}
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestMemoryStorageCopies(t *testing.T) {
	s := NewMemoryStorage()
	in := []byte("abc")
	_ = s.Set("k", in)
	in[0] = 'z'
	v, _, _ := s.Get("k")
	if string(v) != "abc" {
		t.Fatalf("Get = %q, want stored copy", v)
	}
}

func TestFileStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	exerciseStorage(t, s)

	if err := s.Set(StorageKey, []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, StorageKey+".json")); err != nil {
		t.Fatalf("expected blob file: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want 1 (no temp files left)", len(entries))
	}
}
