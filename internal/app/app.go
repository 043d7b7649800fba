// Package app implements the application layer for keel: it sequences
// configuration loading, plugin resolution, and project generation, and
// reports each phase as a recorded unit of work.
package app

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/hullworks/keel/internal/core/ports"
	"github.com/hullworks/keel/internal/engine/generator"
	"github.com/hullworks/keel/internal/engine/plugins"
)

// RunOptions adjusts one generation run.
type RunOptions struct {
	// Force regenerates the tree even when the fingerprint matches.
	Force bool

	// Mode is forwarded to plugin resolution callbacks.
	Mode domain.Mode
}

// App sequences the generation pipeline.
type App struct {
	loader   ports.ConfigLoader
	resolver *plugins.Resolver
	gen      *generator.Generator
	reporter ports.Reporter
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, resolver *plugins.Resolver, gen *generator.Generator, reporter ports.Reporter) *App {
	return &App{
		loader:   loader,
		resolver: resolver,
		gen:      gen,
		reporter: reporter,
	}
}

// Run executes one generation run rooted at projectRoot.
func (a *App) Run(ctx context.Context, projectRoot string, opts RunOptions) (*domain.GenerateResult, error) {
	mode := opts.Mode
	if mode == "" {
		mode = domain.ModeGenerate
	}

	root, err := a.phaseLoad(ctx, projectRoot)
	if err != nil {
		return nil, err
	}

	res, err := a.phaseResolve(ctx, root, projectRoot, mode)
	if err != nil {
		return nil, err
	}

	return a.phaseGenerate(ctx, root, res, projectRoot, opts.Force)
}

func (a *App) phaseLoad(ctx context.Context, projectRoot string) (*domain.RootConfig, error) {
	_, vtx := a.reporter.Record(ctx, "load configuration")

	root, err := a.loader.Load(projectRoot)
	if err != nil {
		err = zerr.Wrap(err, "loading configuration")
		vtx.Complete(err)
		return nil, err
	}
	vtx.Complete(nil)
	return root, nil
}

func (a *App) phaseResolve(ctx context.Context, root *domain.RootConfig, projectRoot string, mode domain.Mode) (*plugins.Resolution, error) {
	ctx, vtx := a.reporter.Record(ctx, "resolve plugins")

	res, err := a.resolver.Resolve(ctx, root, projectRoot, mode)
	if err != nil {
		err = zerr.Wrap(err, "resolving plugins")
		vtx.Complete(err)
		return nil, err
	}
	vtx.Complete(nil)
	return res, nil
}

func (a *App) phaseGenerate(ctx context.Context, root *domain.RootConfig, res *plugins.Resolution, projectRoot string, force bool) (*domain.GenerateResult, error) {
	ctx, vtx := a.reporter.Record(ctx, "generate project")

	result, err := a.gen.Generate(ctx, root, res, projectRoot, force)
	if err != nil {
		err = zerr.Wrap(err, "generating project")
		vtx.Complete(err)
		return nil, err
	}
	if result.Skipped {
		vtx.Cached()
	} else {
		vtx.Complete(nil)
	}
	return result, nil
}
