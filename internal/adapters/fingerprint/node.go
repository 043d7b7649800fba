package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/hullworks/keel/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprint store Graft node.
const NodeID graft.ID = "adapter.fingerprint"

func init() {
	graft.Register(graft.Node[ports.FingerprintStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FingerprintStore, error) {
			return NewStore(), nil
		},
	})
}
