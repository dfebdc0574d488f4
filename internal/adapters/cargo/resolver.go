// Package cargo reads workspace metadata from cargo.
package cargo

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// cacheSize bounds the number of workspaces kept in memory.
const cacheSize = 16

// Resolver implements ports.MetadataResolver with `cargo metadata`.
// Results are cached per directory for the lifetime of the process.
type Resolver struct {
	runner ports.CommandRunner
	logger ports.Logger
	cache  *lru.Cache[string, *domain.Workspace]
}

// NewResolver creates a new Resolver.
func NewResolver(runner ports.CommandRunner, logger ports.Logger) (*Resolver, error) {
	cache, err := lru.New[string, *domain.Workspace](cacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create metadata cache")
	}
	return &Resolver{
		runner: runner,
		logger: logger,
		cache:  cache,
	}, nil
}

// MetadataCommand returns the cargo invocation describing the workspace containing dir.
func MetadataCommand(dir string) domain.Command {
	return domain.Command{
		Program: "cargo",
		Args:    []string{"metadata", "--format-version", "1"},
		Dir:     dir,
	}
}

// Resolve returns the workspace containing dir.
func (r *Resolver) Resolve(ctx context.Context, dir string) (*domain.Workspace, error) {
	key := filepath.Clean(dir)
	if ws, ok := r.cache.Get(key); ok {
		return ws, nil
	}

	out, err := r.runner.Output(ctx, MetadataCommand(key))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataFailed.Error()), "dir", key)
	}

	var ws domain.Workspace
	if err := json.Unmarshal(out, &ws); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataFailed.Error()), "dir", key)
	}
	if ws.Root == "" {
		return nil, zerr.With(domain.ErrMetadataFailed, "reason", "missing workspace_root")
	}

	r.logger.Debug(fmt.Sprintf("resolved workspace %s with %d packages", ws.Root, len(ws.Packages)))
	r.cache.Add(key, &ws)
	return &ws, nil
}
