package plugins

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hullworks/keel/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/hullworks/keel/internal/core/ports"
)

// NodeID is the unique identifier for the plugin resolver Graft node.
const NodeID graft.ID = "engine.plugins"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})
}
