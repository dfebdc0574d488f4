package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/core/ports"
)

// NodeID is the unique identifier for the invocation store Graft node.
const NodeID graft.ID = "adapter.invocation_store"

func init() {
	graft.Register(graft.Node[ports.InvocationStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InvocationStore, error) {
			return NewStore(), nil
		},
	})
}
