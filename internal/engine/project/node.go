package project

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the project synthesizer Graft node.
const NodeID graft.ID = "engine.project"

func init() {
	graft.Register(graft.Node[*Synthesizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Synthesizer, error) {
			return NewSynthesizer(), nil
		},
	})
}
