package compiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pinedance/datalink/pkg/catalog"
)

// artifactSet holds every derived artifact in memory. Nothing touches the
// output directory until the whole set has been rendered, so a failed build
// never publishes a partial contract.
type artifactSet struct {
	network       NetworkView
	meta          map[string]EntityMeta
	relationships []catalog.Relationship
	documents     map[string]catalog.Entity
}

// emit writes the artifact set into a staging directory next to the output
// directory and swaps it into place once every file is on disk. The staging
// directory is removed on any failure.
func emit(outDir string, buildID string, set *artifactSet) (err error) {
	stageDir := outDir + ".stage-" + buildID

	defer func() {
		if err != nil {
			os.RemoveAll(stageDir)
		}
	}()

	if err = os.MkdirAll(filepath.Join(stageDir, "entities"), 0755); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}

	if err = writeJSON(filepath.Join(stageDir, "network.json"), set.network); err != nil {
		return err
	}
	if err = writeJSON(filepath.Join(stageDir, "entities-meta.json"), set.meta); err != nil {
		return err
	}
	if err = writeJSON(filepath.Join(stageDir, "relationships.json"), set.relationships); err != nil {
		return err
	}
	for id, doc := range set.documents {
		if err = writeJSON(filepath.Join(stageDir, "entities", id+".json"), doc); err != nil {
			return err
		}
	}

	if err = os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("failed to remove previous artifacts: %w", err)
	}
	if err = os.Rename(stageDir, outDir); err != nil {
		return fmt.Errorf("failed to publish artifacts: %w", err)
	}

	return nil
}

// writeJSON renders v as two-space indented JSON with HTML escaping
// disabled, matching the output format the view layer was built against.
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
