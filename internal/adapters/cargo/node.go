package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/adapters/logger"
	"go.trai.ch/weld/internal/adapters/shell"
	"go.trai.ch/weld/internal/core/ports"
)

// NodeID is the unique identifier for the metadata resolver Graft node.
const NodeID graft.ID = "adapter.metadata_resolver"

func init() {
	graft.Register(graft.Node[ports.MetadataResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RunnerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.MetadataResolver, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(runner, log)
		},
	})
}
