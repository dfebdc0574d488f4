package ports

import (
	"context"

	"go.trai.ch/weld/internal/core/domain"
)

// Linker performs the link step weld is asked to do when it runs as the toolchain's linker.
//
//go:generate go run go.uber.org/mock/mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type Linker interface {
	Link(ctx context.Context, intent domain.LinkIntent, args []string) error
}
