package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hullworks/keel/internal/adapters/fingerprint"
	"github.com/hullworks/keel/internal/adapters/logger"
	"github.com/hullworks/keel/internal/adapters/templates"
	"github.com/hullworks/keel/internal/core/ports"
	"github.com/hullworks/keel/internal/engine/project"
)

// NodeID is the unique identifier for the generation orchestrator Graft
// node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fingerprint.NodeID, templates.NodeID, project.NodeID},
		Run: func(ctx context.Context) (*Generator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.FingerprintStore](ctx)
			if err != nil {
				return nil, err
			}
			tmpl, err := graft.Dep[ports.Templates](ctx)
			if err != nil {
				return nil, err
			}
			synth, err := graft.Dep[*project.Synthesizer](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, store, tmpl, synth), nil
		},
	})
}
