package android

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/core/ports"
)

// NodeID is the unique identifier for the Android toolchain Graft node.
const NodeID graft.ID = "adapter.android_toolchain"

func init() {
	graft.Register(graft.Node[ports.AndroidToolchain]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AndroidToolchain, error) {
			return NewLocator(), nil
		},
	})
}
