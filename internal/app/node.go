package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hullworks/keel/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"github.com/hullworks/keel/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/hullworks/keel/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/hullworks/keel/internal/core/ports"
	"github.com/hullworks/keel/internal/engine/generator"
	"github.com/hullworks/keel/internal/engine/plugins"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer
// needs access to.
type Components struct {
	App      *App
	Logger   ports.Logger
	Reporter ports.Reporter
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			plugins.NodeID,
			generator.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[*plugins.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			gen, err := graft.Dep[*generator.Generator](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, resolver, gen, reporter), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, Reporter: reporter}, nil
		},
	})
}
