package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/pinedance/datalink/pkg/catalog"
)

// Document is one decoded source file. A document may declare any number of
// entities and relationships, including none of either.
type Document struct {
	Entities      []catalog.Entity       `yaml:"entities"`
	Relationships []catalog.Relationship `yaml:"relationships"`
}

// File pairs a decoded document with the path it came from, so merge errors
// can identify the offending file.
type File struct {
	Path     string
	Document Document
}

// Discover returns the source files to compile, in sorted filename order.
// It collects *.yaml and *.yml files from sourceDir; when the directory
// yields nothing it falls back to the legacy single-file layout at
// legacyFile, if present.
func Discover(sourceDir string, legacyFile string) ([]string, error) {
	var paths []string

	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to glob %s in %s: %w", pattern, sourceDir, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	if len(paths) == 0 && legacyFile != "" {
		if _, err := os.Stat(legacyFile); err == nil {
			paths = []string{legacyFile}
		}
	}

	return paths, nil
}

// Load reads and decodes every path into a File, preserving order.
func Load(paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
		}

		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse source file %s: %w", path, err)
		}

		files = append(files, File{Path: path, Document: doc})
	}

	return files, nil
}
