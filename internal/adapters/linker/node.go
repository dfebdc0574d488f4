package linker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/adapters/logger"
	"go.trai.ch/weld/internal/adapters/shell"
	"go.trai.ch/weld/internal/core/ports"
)

// NodeID is the unique identifier for the linker Graft node.
const NodeID graft.ID = "adapter.linker"

func init() {
	graft.Register(graft.Node[ports.Linker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RunnerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Linker, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDelegate(runner, log), nil
		},
	})
}
