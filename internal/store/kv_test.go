package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTest(t *testing.T) (*KV, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", DBFile)
	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv, path
}

func TestKVGetSetDelete(t *testing.T) {
	kv, _ := openTest(t)

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}
	if err := kv.Set("a", []byte(`{"x":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("a", []byte(`{"x":2}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := kv.Get("a")
	if err != nil || !ok || string(v) != `{"x":2}` {
		t.Fatalf("Get = %s, %v, %v", v, ok, err)
	}
	if err := kv.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := kv.Get("a"); ok {
		t.Fatal("value present after Delete")
	}
	if err := kv.Delete("a"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestKVUpdatedAt(t *testing.T) {
	kv, _ := openTest(t)
	when := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	kv.now = func() time.Time { return when }

	if err := kv.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	got, ok, err := kv.UpdatedAt("k")
	if err != nil || !ok || !got.Equal(when) {
		t.Fatalf("UpdatedAt = %v, %v, %v; want %v", got, ok, err, when)
	}
}

func TestKVReopenKeepsData(t *testing.T) {
	kv, path := openTest(t)
	if err := kv.Set("k", []byte("persisted")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = again.Close() }()

	v, ok, err := again.Get("k")
	if err != nil || !ok || string(v) != "persisted" {
		t.Fatalf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}
