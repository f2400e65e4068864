package compiler

import (
	"sort"

	"github.com/pinedance/datalink/pkg/catalog"
)

// NetworkView is the payload behind network.json, shaped for the
// vis-network renderer: one node per entity, one edge per relationship.
type NetworkView struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a single entity rendered into the network graph.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Color string `json:"color"`
	Shape string `json:"shape"`
	Size  int    `json:"size"`
	Font  Font   `json:"font"`
	Type  string `json:"type"`
}

// Edge is a single relationship rendered into the network graph.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Arrows string `json:"arrows"`
	Font   Font   `json:"font"`
}

// Font carries the per-element font settings the renderer expects.
type Font struct {
	Size int `json:"size"`
}

// EntityMeta is the lightweight projection behind entities-meta.json, used
// to resolve relationship endpoints without fetching full entity documents.
type EntityMeta struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// HSL palettes carried over from the original catalog. Korean type names
// are the primary keys; the English aliases exist for older source files.
var entityColors = map[string]string{
	"인물":       "hsla(356, 100%, 73%, 0.9)",
	"영화":       "hsla(217, 92%, 73%, 0.9)",
	"장르":       "hsla(162, 73%, 46%, 0.9)",
	"도서":       "hsla(45, 93%, 70%, 0.9)",
	"음악":       "hsla(250, 85%, 75%, 0.9)",
	"TV시리즈":    "hsla(210, 11%, 45%, 0.9)",
	"person":    "hsla(356, 100%, 73%, 0.9)",
	"movie":     "hsla(217, 92%, 73%, 0.9)",
	"genre":     "hsla(162, 73%, 46%, 0.9)",
	"book":      "hsla(45, 93%, 70%, 0.9)",
	"music":     "hsla(250, 85%, 75%, 0.9)",
	"tv_series": "hsla(210, 11%, 45%, 0.9)",
}

var relationColors = map[string]string{
	"directed":   "hsla(328, 78%, 64%, 1)",
	"composed":   "hsla(178, 100%, 40%, 1)",
	"belongs_to": "hsla(252, 69%, 63%, 1)",
	"related_to": "hsla(345, 95%, 74%, 1)",
	"starred_in": "hsla(200, 9%, 41%, 1)",
}

const fallbackColor = "hsla(200, 9%, 41%, 1)"

const (
	baseNodeSize    = 20
	sizePerLink     = 5
	nodeFontSize    = 14
	edgeFontSize    = 12
	nodeShape       = "dot"
	edgeArrowTarget = "to"
)

// projectNetworkView builds the node and edge lists. Nodes are sorted by id
// so the artifact is byte-identical across runs; edges keep source order,
// which is already deterministic.
func projectNetworkView(merged *mergedGraph) NetworkView {
	nodes := make([]Node, 0, len(merged.entities))
	for _, entity := range merged.entities {
		nodes = append(nodes, Node{
			ID:    entity.ID,
			Label: entity.Name,
			Title: entity.Description,
			Color: colorForType(entityColors, entity.Type),
			Shape: nodeShape,
			Size:  baseNodeSize + sizePerLink*len(entity.ExternalLinks),
			Font:  Font{Size: nodeFontSize},
			Type:  entity.Type,
		})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	edges := make([]Edge, 0, len(merged.relationships))
	for _, rel := range merged.relationships {
		edges = append(edges, Edge{
			From:   rel.From,
			To:     rel.To,
			Label:  rel.Type,
			Color:  colorForType(relationColors, rel.Type),
			Arrows: edgeArrowTarget,
			Font:   Font{Size: edgeFontSize},
		})
	}

	return NetworkView{Nodes: nodes, Edges: edges}
}

func colorForType(palette map[string]string, key string) string {
	if color, ok := palette[key]; ok {
		return color
	}
	return fallbackColor
}

// projectEntitiesMeta builds the id -> {id, name, type} index. Metadata
// only; detail pages fetch the full document separately.
func projectEntitiesMeta(merged *mergedGraph) map[string]EntityMeta {
	meta := make(map[string]EntityMeta, len(merged.entities))
	for id, entity := range merged.entities {
		meta[id] = EntityMeta{ID: entity.ID, Name: entity.Name, Type: entity.Type}
	}
	return meta
}

// projectRelationships returns the relationship list verbatim, for
// client-side filtering by endpoint.
func projectRelationships(merged *mergedGraph) []catalog.Relationship {
	if merged.relationships == nil {
		return []catalog.Relationship{}
	}
	return merged.relationships
}

// projectEntityDocuments returns one complete entity record per id, each
// addressable as entities/{id}.json.
func projectEntityDocuments(merged *mergedGraph) map[string]catalog.Entity {
	docs := make(map[string]catalog.Entity, len(merged.entities))
	for id, entity := range merged.entities {
		docs[id] = *entity
	}
	return docs
}
