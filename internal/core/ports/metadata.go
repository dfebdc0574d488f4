package ports

import (
	"context"

	"go.trai.ch/weld/internal/core/domain"
)

// MetadataResolver reads the package graph of a cargo workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataResolver interface {
	// Resolve returns the workspace containing dir.
	Resolve(ctx context.Context, dir string) (*domain.Workspace, error)
}
