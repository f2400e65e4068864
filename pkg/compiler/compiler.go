package compiler

import (
	"context"
	"fmt"

	"github.com/go-playground/validator"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/pinedance/datalink/pkg/logger"
	"github.com/pinedance/datalink/pkg/source"
)

// Client compiles the authored YAML catalog into the derived JSON artifacts
// consumed by the view layer. A single Compile call is one batch run:
// load, validate, merge, project, publish. Any detected inconsistency
// aborts the run before anything is written.
type Client struct {
	sourceDir  string
	legacyFile string
	imagesDir  string
	outDir     string
	validate   *validator.Validate
}

// NewClientParams defines the input parameters for creating a compiler
// Client. All paths are interpreted relative to the working directory
// unless absolute.
type NewClientParams struct {
	SourceDir  string
	LegacyFile string
	ImagesDir  string
	OutDir     string
}

// NewClient creates a compiler client for the given source and output
// layout.
func NewClient(params NewClientParams) *Client {
	return &Client{
		sourceDir:  params.SourceDir,
		legacyFile: params.LegacyFile,
		imagesDir:  params.ImagesDir,
		outDir:     params.OutDir,
		validate:   validator.New(),
	}
}

// Result summarizes a completed compile run.
type Result struct {
	BuildID       string
	SourceFiles   int
	Entities      int
	Relationships int
}

// Compile runs the full batch: discover and decode source files, merge and
// validate the graph, attach discovered local images, project the four
// artifacts, and publish them atomically.
func (c *Client) Compile(ctx context.Context) (*Result, error) {
	buildID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate build id: %w", err)
	}

	paths, err := source.Discover(c.sourceDir, c.legacyFile)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no source files found in %s", c.sourceDir)
	}

	logger.Info("[Compile] Loading sources", "build_id", buildID, "files", len(paths))

	files, err := source.Load(paths)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged, err := mergeSources(files, c.validate)
	if err != nil {
		return nil, err
	}

	logger.Info("[Compile] Merged graph",
		"entities", len(merged.entities),
		"relationships", len(merged.relationships),
	)

	if c.imagesDir != "" {
		for _, entity := range merged.entities {
			if err := attachLocalImages(c.imagesDir, entity); err != nil {
				return nil, err
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set := &artifactSet{
		network:       projectNetworkView(merged),
		meta:          projectEntitiesMeta(merged),
		relationships: projectRelationships(merged),
		documents:     projectEntityDocuments(merged),
	}

	if err := emit(c.outDir, buildID, set); err != nil {
		return nil, err
	}

	logger.Info("[Compile] Artifacts published", "out_dir", c.outDir)

	return &Result{
		BuildID:       buildID,
		SourceFiles:   len(files),
		Entities:      len(merged.entities),
		Relationships: len(merged.relationships),
	}, nil
}
