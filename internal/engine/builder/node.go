package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/adapters/linear"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weld/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weld/internal/adapters/scaffold"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weld/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weld/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/weld/internal/engine/command"
	"go.trai.ch/weld/internal/engine/estimate"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			command.NodeID,
			estimate.NodeID,
			shell.ToolchainNodeID,
			scaffold.NodeID,
			linear.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			assembler, err := graft.Dep[*command.Assembler](ctx)
			if err != nil {
				return nil, err
			}

			estimator, err := graft.Dep[*estimate.Estimator](ctx)
			if err != nil {
				return nil, err
			}

			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			scaffolder, err := graft.Dep[ports.Scaffolder](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(
				assembler,
				estimator,
				toolchain,
				NewDirPreparer(scaffolder, log),
				reporter,
				tracer,
				log,
			), nil
		},
	})
}
