package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/adapters/logger"
	"go.trai.ch/weld/internal/core/ports"
)

const (
	// ToolchainNodeID is the unique identifier for the toolchain Graft node.
	ToolchainNodeID graft.ID = "adapter.toolchain"
	// RunnerNodeID is the unique identifier for the command runner Graft node.
	RunnerNodeID graft.ID = "adapter.runner"
)

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        ToolchainNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})

	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
