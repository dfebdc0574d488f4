// Package estimate sizes the progress counter of a build.
package estimate

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// targetsPerUnit is the empirical ratio between package targets and compiled units.
const targetsPerUnit = 3.5

// QueryBuilder derives the unit graph query from the real build command.
type QueryBuilder interface {
	UnitGraphCommand(req *domain.BuildRequest, build domain.Command) domain.Command
}

// Estimator estimates how many units a build compiles.
type Estimator struct {
	runner  ports.CommandRunner
	queries QueryBuilder
	logger  ports.Logger
}

// New creates an Estimator.
func New(runner ports.CommandRunner, queries QueryBuilder, logger ports.Logger) *Estimator {
	return &Estimator{
		runner:  runner,
		queries: queries,
		logger:  logger,
	}
}

// Estimate returns the exact unit count from the nightly unit graph when available,
// or a heuristic from the resolved dependency graph. It never fails.
func (e *Estimator) Estimate(ctx context.Context, req *domain.BuildRequest, build domain.Command) int {
	count, err := e.exact(ctx, req, build)
	if err == nil {
		return count
	}

	e.logger.Debug(fmt.Sprintf("unit graph unavailable, using heuristic: %v", err))
	return Heuristic(req.Crate)
}

type unitGraph struct {
	Units []json.RawMessage `json:"units"`
}

func (e *Estimator) exact(ctx context.Context, req *domain.BuildRequest, build domain.Command) (int, error) {
	out, err := e.runner.Output(ctx, e.queries.UnitGraphCommand(req, build))
	if err != nil {
		return 0, zerr.Wrap(err, "unit graph query failed")
	}

	var graph unitGraph
	if err := json.Unmarshal(out, &graph); err != nil {
		return 0, zerr.Wrap(err, "failed to decode unit graph")
	}
	if graph.Units == nil {
		return 0, zerr.New("unit graph has no units")
	}
	return len(graph.Units), nil
}

// Heuristic divides the number of targets reachable through non-dev dependencies by targetsPerUnit.
func Heuristic(crate *domain.Crate) int {
	if crate == nil || crate.Workspace == nil || crate.Package == nil {
		return 0
	}
	targets := crate.Workspace.ReachableTargetCount(crate.Package.ID)
	return int(math.Floor(float64(targets) / targetsPerUnit))
}
