package generator

import (
	"fmt"

	"github.com/mhalstead/linkgraph/core/buildmodel"
	"github.com/mhalstead/linkgraph/core/collector"
	"github.com/mhalstead/linkgraph/core/config"
	"github.com/mhalstead/linkgraph/core/deps"
	"github.com/mhalstead/linkgraph/core/emitter"
	"github.com/mhalstead/linkgraph/core/filter"
	"github.com/mhalstead/linkgraph/core/graph"
	"github.com/mhalstead/linkgraph/core/logger"
)

// Generator runs the whole pipeline: collect, filter, normalize, assemble,
// write, emit, render. One invocation, no state carried across runs.
type Generator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

func (g *Generator) Run() error {
	model, err := buildmodel.LoadSnapshot(g.cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to load build model: %w", err)
	}

	root := g.cfg.SourceDir
	if root == "" {
		root = model.Root
	}

	collected := collector.New(model, g.cfg.FetchedDirs).Collect(root)
	logger.Debug("Collected %d target(s) under %s", len(collected), root)

	retained := filter.New(model, g.cfg.ExcludeTargets).Apply(collected)
	logger.Debug("Retained %d target(s) after filtering", len(retained))

	res := deps.NewResolver(model, g.cfg.ExcludeDependencies).Normalize(retained)
	doc := graph.Assemble(model, res)

	if err := graph.ResetOutputDir(g.cfg.OutputDir); err != nil {
		return err
	}

	docPath, err := graph.WriteDocument(doc, g.cfg.OutputDir)
	if err != nil {
		return err
	}
	logger.Info("Wrote graph document: %s", docPath)

	files, err := emitter.New(g.cfg.Namespace).EmitAll(doc, g.cfg.OutputDir)
	if err != nil {
		return err
	}
	logger.Info("Emitted %d diagram file(s)", len(files))

	if g.cfg.SkipRender {
		logger.Debug("Render skipped by configuration")
		return nil
	}
	emitter.Render(files, g.cfg.RenderArgs)
	return nil
}
