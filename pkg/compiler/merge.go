package compiler

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/pinedance/datalink/pkg/catalog"
	"github.com/pinedance/datalink/pkg/source"
)

// mergedGraph is the validated union of all source documents. Entity lookup
// is by id; relationship order follows the sorted file order, which keeps
// every projection deterministic.
type mergedGraph struct {
	entities      map[string]*catalog.Entity
	entityFile    map[string]string
	relationships []catalog.Relationship
}

// mergeSources concatenates every source document into one graph, checking
// each record's schema as it goes and referential integrity once the full
// entity set is known. Relationships may reference entities declared in any
// file, so the endpoint check has to run after the merge.
func mergeSources(files []source.File, validate *validator.Validate) (*mergedGraph, error) {
	merged := &mergedGraph{
		entities:   make(map[string]*catalog.Entity),
		entityFile: make(map[string]string),
	}

	type relOrigin struct {
		file  string
		index int
	}
	var origins []relOrigin

	for _, file := range files {
		for i := range file.Document.Entities {
			entity := file.Document.Entities[i]

			if err := validate.Struct(entity); err != nil {
				return nil, &SchemaError{File: file.Path, Kind: "entity", Index: i, Err: err}
			}

			// Ids become artifact filenames (entities/{id}.json).
			if strings.ContainsAny(entity.ID, `/\`) || strings.Contains(entity.ID, "..") {
				return nil, &SchemaError{
					File: file.Path, Kind: "entity", Index: i,
					Err: fmt.Errorf("id %q must not contain path separators", entity.ID),
				}
			}

			if firstFile, ok := merged.entityFile[entity.ID]; ok {
				return nil, &DuplicateIDError{ID: entity.ID, File: file.Path, FirstFile: firstFile}
			}

			merged.entities[entity.ID] = &entity
			merged.entityFile[entity.ID] = file.Path
		}

		for i, rel := range file.Document.Relationships {
			if err := validate.Struct(rel); err != nil {
				return nil, &SchemaError{File: file.Path, Kind: "relationship", Index: i, Err: err}
			}

			merged.relationships = append(merged.relationships, rel)
			origins = append(origins, relOrigin{file: file.Path, index: i})
		}
	}

	for i, rel := range merged.relationships {
		for _, endpoint := range []string{rel.From, rel.To} {
			if _, ok := merged.entities[endpoint]; !ok {
				return nil, &DanglingRefError{
					File:    origins[i].file,
					Index:   origins[i].index,
					From:    rel.From,
					To:      rel.To,
					Missing: endpoint,
				}
			}
		}
	}

	return merged, nil
}
