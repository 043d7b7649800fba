package templates

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hullworks/keel/internal/core/ports"
)

// NodeID is the unique identifier for the template producer Graft node.
const NodeID graft.ID = "adapter.templates"

func init() {
	graft.Register(graft.Node[ports.Templates]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Templates, error) {
			return NewSet(), nil
		},
	})
}
