package estimate

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weld/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/weld/internal/engine/command"
)

// NodeID is the unique identifier for the estimator Graft node.
const NodeID graft.ID = "engine.estimate"

func init() {
	graft.Register(graft.Node[*Estimator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RunnerNodeID, command.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Estimator, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			assembler, err := graft.Dep[*command.Assembler](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, assembler, log), nil
		},
	})
}
