package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// cacheEntry stores artifact bytes together with the modification time they
// were read at, so a rebuild on disk invalidates the entry.
type cacheEntry struct {
	data    []byte
	modTime time.Time
}

// Store is a session-scoped read cache over the compiled artifact
// directory. It is owned by the server that serves the artifacts; Reset
// drops everything cached so far. There is no ambient package-level state.
type Store struct {
	baseDir string
	mu      sync.RWMutex
	cache   map[string]*cacheEntry
}

// NewStore creates a store over the given artifact directory.
func NewStore(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		cache:   make(map[string]*cacheEntry),
	}
}

// Get returns the bytes of the artifact at the given path relative to the
// artifact directory, reading from cache when the file on disk has not
// changed since it was last read.
func (s *Store) Get(relPath string) ([]byte, error) {
	relPath = filepath.ToSlash(filepath.Clean(relPath))
	if strings.HasPrefix(relPath, "..") || filepath.IsAbs(relPath) {
		return nil, fmt.Errorf("invalid artifact path %q", relPath)
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(relPath))

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat artifact %s: %w", relPath, err)
	}

	s.mu.RLock()
	if entry, ok := s.cache[relPath]; ok && !entry.modTime.Before(info.ModTime()) {
		data := entry.data
		s.mu.RUnlock()
		return data, nil
	}
	s.mu.RUnlock()

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", relPath, err)
	}

	s.mu.Lock()
	s.cache[relPath] = &cacheEntry{data: data, modTime: info.ModTime()}
	s.mu.Unlock()

	return data, nil
}

// Reset drops every cached artifact.
func (s *Store) Reset() {
	s.mu.Lock()
	s.cache = make(map[string]*cacheEntry)
	s.mu.Unlock()
}
