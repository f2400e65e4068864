package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreGet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "network.json")
	if err := os.WriteFile(path, []byte(`{"nodes":[]}`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store := NewStore(dir)

	data, err := store.Get("network.json")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(data) != `{"nodes":[]}` {
		t.Errorf("Get() = %q", data)
	}

	// Rewrite with an older mtime: the cached copy is served.
	if err := os.WriteFile(path, []byte(`{"nodes":[1]}`), 0644); err != nil {
		t.Fatalf("failed to rewrite fixture: %v", err)
	}
	stale := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, stale, stale); err != nil {
		t.Fatalf("failed to set mtime: %v", err)
	}

	data, err = store.Get("network.json")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(data) != `{"nodes":[]}` {
		t.Errorf("Get() = %q, want cached copy", data)
	}

	// A newer mtime invalidates the entry.
	fresh := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, fresh, fresh); err != nil {
		t.Fatalf("failed to set mtime: %v", err)
	}

	data, err = store.Get("network.json")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(data) != `{"nodes":[1]}` {
		t.Errorf("Get() = %q, want re-read copy", data)
	}
}

func TestStoreReset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.json")
	if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store := NewStore(dir)
	if _, err := store.Get("meta.json"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("v2"), 0644); err != nil {
		t.Fatalf("failed to rewrite fixture: %v", err)
	}
	stale := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, stale, stale); err != nil {
		t.Fatalf("failed to set mtime: %v", err)
	}

	store.Reset()

	data, err := store.Get("meta.json")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(data) != "v2" {
		t.Errorf("Get() after Reset() = %q, want fresh read", data)
	}
}

func TestStoreGetRejectsEscapingPaths(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, path := range []string{"../secret.json", "a/../../secret.json", "/etc/passwd"} {
		if _, err := store.Get(path); err == nil {
			t.Errorf("Get(%q) succeeded, want error", path)
		}
	}
}

func TestStoreGetMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Get("missing.json"); err == nil {
		t.Fatal("expected error, got none")
	}
}
