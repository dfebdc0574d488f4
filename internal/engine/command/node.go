package command

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/adapters/android" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weld/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weld/internal/core/ports"
)

// NodeID is the unique identifier for the command assembler Graft node.
const NodeID graft.ID = "engine.command"

func init() {
	graft.Register(graft.Node[*Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{android.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Assembler, error) {
			ndk, err := graft.Dep[ports.AndroidToolchain](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAssembler(ndk, log), nil
		},
	})
}
