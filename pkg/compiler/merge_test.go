package compiler

import (
	"errors"
	"testing"

	"github.com/go-playground/validator"

	"github.com/pinedance/datalink/pkg/catalog"
	"github.com/pinedance/datalink/pkg/source"
)

func TestMergeSources(t *testing.T) {
	validate := validator.New()

	entity := func(id string) catalog.Entity {
		return catalog.Entity{ID: id, Type: "person", Name: id}
	}

	t.Run("cross-file references resolve", func(t *testing.T) {
		files := []source.File{
			{
				Path: "one.yaml",
				Document: source.Document{
					Entities: []catalog.Entity{entity("a")},
					Relationships: []catalog.Relationship{
						{From: "a", To: "b", Type: "knows"},
					},
				},
			},
			{
				Path: "two.yaml",
				Document: source.Document{
					Entities: []catalog.Entity{entity("b")},
				},
			},
		}

		merged, err := mergeSources(files, validate)
		if err != nil {
			t.Fatalf("mergeSources() error = %v", err)
		}
		if len(merged.entities) != 2 || len(merged.relationships) != 1 {
			t.Errorf("merged = %d entities, %d relationships", len(merged.entities), len(merged.relationships))
		}
		if merged.entityFile["b"] != "two.yaml" {
			t.Errorf("entityFile[b] = %q", merged.entityFile["b"])
		}
	})

	t.Run("duplicate id in same file", func(t *testing.T) {
		files := []source.File{
			{
				Path: "one.yaml",
				Document: source.Document{
					Entities: []catalog.Entity{entity("a"), entity("a")},
				},
			},
		}

		_, err := mergeSources(files, validate)
		var dupErr *DuplicateIDError
		if !errors.As(err, &dupErr) {
			t.Fatalf("error = %v, want DuplicateIDError", err)
		}
		if dupErr.File != "one.yaml" || dupErr.FirstFile != "one.yaml" {
			t.Errorf("files = %q / %q", dupErr.File, dupErr.FirstFile)
		}
	})

	t.Run("relationship missing type", func(t *testing.T) {
		files := []source.File{
			{
				Path: "one.yaml",
				Document: source.Document{
					Entities: []catalog.Entity{entity("a")},
					Relationships: []catalog.Relationship{
						{From: "a", To: "a"},
					},
				},
			},
		}

		_, err := mergeSources(files, validate)
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("error = %v, want SchemaError", err)
		}
		if schemaErr.Kind != "relationship" || schemaErr.Index != 0 {
			t.Errorf("schema error = %+v", schemaErr)
		}
	})

	t.Run("id with path separator", func(t *testing.T) {
		files := []source.File{
			{
				Path: "one.yaml",
				Document: source.Document{
					Entities: []catalog.Entity{entity("a/b")},
				},
			},
		}

		_, err := mergeSources(files, validate)
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("error = %v, want SchemaError", err)
		}
	})

	t.Run("dangling reference names origin", func(t *testing.T) {
		files := []source.File{
			{
				Path: "one.yaml",
				Document: source.Document{
					Entities: []catalog.Entity{entity("a")},
					Relationships: []catalog.Relationship{
						{From: "a", To: "a", Type: "self"},
						{From: "a", To: "ghost", Type: "haunts"},
					},
				},
			},
		}

		_, err := mergeSources(files, validate)
		var danglingErr *DanglingRefError
		if !errors.As(err, &danglingErr) {
			t.Fatalf("error = %v, want DanglingRefError", err)
		}
		if danglingErr.Missing != "ghost" || danglingErr.Index != 1 || danglingErr.File != "one.yaml" {
			t.Errorf("dangling error = %+v", danglingErr)
		}
	})
}
