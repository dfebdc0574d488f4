package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weld/internal/adapters/cargo"  //nolint:depguard // Wired in app layer
	"go.trai.ch/weld/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/weld/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/weld/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/weld/internal/adapters/linker" //nolint:depguard // Wired in app layer
	"go.trai.ch/weld/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/weld/internal/engine/builder"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cargo.NodeID,
			builder.NodeID,
			cas.NodeID,
			linker.NodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	metadata, err := graft.Dep[ports.MetadataResolver](ctx)
	if err != nil {
		return nil, err
	}

	b, err := graft.Dep[*builder.Builder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.InvocationStore](ctx)
	if err != nil {
		return nil, err
	}

	lnk, err := graft.Dep[ports.Linker](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, metadata, b, store, lnk, reporter, log), nil
}
