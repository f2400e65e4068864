package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Graph represents the merged catalog: every entity and relationship from
// all source documents, after validation and normalization.
//
// A graph contains:
//   - Entities: nodes representing real-world subjects (people, works, etc.)
//   - Relationships: directed, typed edges between entities
//
// The graph is immutable after compilation; derived artifacts are pure
// functions of it.
type Graph struct {
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
}

// Entity represents a node in the catalog. An entity can be a person, a
// movie, a book, or any other subject worth linking. The type is a free-form
// grouping tag, not a schema discriminator.
type Entity struct {
	ID            string         `yaml:"id" json:"id" validate:"required"`
	Type          string         `yaml:"type" json:"type" validate:"required"`
	Name          string         `yaml:"name" json:"name" validate:"required"`
	Description   string         `yaml:"description,omitempty" json:"description,omitempty"`
	Properties    Properties     `yaml:"properties,omitempty" json:"properties,omitempty"`
	ExternalLinks []ExternalLink `yaml:"external_links,omitempty" json:"external_links,omitempty"`
	ImageLinks    []ImageLink    `yaml:"image_links,omitempty" json:"image_links,omitempty"`
	LocalImages   []LocalImage   `yaml:"local_images,omitempty" json:"local_images,omitempty"`
}

// Relationship represents a directed edge between two entities. From and To
// must resolve to entity IDs in the merged graph; the compiler rejects the
// build otherwise.
type Relationship struct {
	From       string     `yaml:"from" json:"from" validate:"required"`
	To         string     `yaml:"to" json:"to" validate:"required"`
	Type       string     `yaml:"type" json:"type" validate:"required"`
	Properties Properties `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// HasEndpoint reports whether the relationship touches the given entity ID
// on either side.
func (r Relationship) HasEndpoint(id string) bool {
	return r.From == id || r.To == id
}

// ExternalLink is a named link to a page about the entity.
type ExternalLink struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// ImageLink is a remote image reference. Source documents may declare it
// either as a bare URL string or as a mapping; both forms decode into this
// one canonical shape, so the rest of the pipeline never sees the string
// form.
type ImageLink struct {
	URL         string `yaml:"url" json:"url"`
	Alt         string `yaml:"alt,omitempty" json:"alt,omitempty"`
	Source      string `yaml:"source,omitempty" json:"source,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// UnmarshalYAML accepts both the legacy bare-string form and the mapping
// form of an image link.
func (l *ImageLink) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var url string
		if err := value.Decode(&url); err != nil {
			return err
		}
		*l = ImageLink{URL: url}
		return nil
	case yaml.MappingNode:
		type plain ImageLink
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*l = ImageLink(p)
		return nil
	}
	return fmt.Errorf("image link must be a URL string or a mapping, got %s", nodeKind(value))
}

// LocalImage is an image stored alongside the catalog, either authored in a
// source document or discovered by the compiler's image scan.
type LocalImage struct {
	Filename    string `yaml:"filename" json:"filename"`
	Path        string `yaml:"path" json:"path"`
	Alt         string `yaml:"alt" json:"alt"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	}
	return "unknown"
}
