package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pinedance/datalink/pkg/catalog"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// attachLocalImages scans imagesDir/<entity-id> for gallery images and
// appends them to the entity's local_images. Authored entries win: a
// scanned file whose name is already declared is skipped. A missing
// directory just means the entity has no local images.
func attachLocalImages(imagesDir string, entity *catalog.Entity) error {
	dir := filepath.Join(imagesDir, entity.ID)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read images directory %s: %w", dir, err)
	}

	declared := make(map[string]struct{}, len(entity.LocalImages))
	for _, img := range entity.LocalImages {
		declared[img.Filename] = struct{}{}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := imageExtensions[ext]; !ok {
			continue
		}
		if _, ok := declared[name]; ok {
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		entity.LocalImages = append(entity.LocalImages, catalog.LocalImage{
			Filename: name,
			Path:     "/images/" + entity.ID + "/" + name,
			Alt:      entity.Name + " - " + stem,
		})
	}

	return nil
}
