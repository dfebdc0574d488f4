// Package builder runs toolchain builds and reports their progress.
package builder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/weld/internal/engine/events"
	"golang.org/x/sync/errgroup"
)

// CommandAssembler turns a request into the toolchain command to spawn.
type CommandAssembler interface {
	Assemble(req *domain.BuildRequest) (domain.Command, error)
}

// UnitEstimator sizes the progress counter of a build.
type UnitEstimator interface {
	Estimate(ctx context.Context, req *domain.BuildRequest, build domain.Command) int
}

// Builder orchestrates one or two toolchain runs per request.
type Builder struct {
	assembler CommandAssembler
	estimator UnitEstimator
	toolchain ports.Toolchain
	dirs      *DirPreparer
	reporter  ports.Reporter
	tracer    ports.Tracer
	logger    ports.Logger
	now       func() time.Time
}

// New creates a new Builder.
func New(
	assembler CommandAssembler,
	estimator UnitEstimator,
	toolchain ports.Toolchain,
	dirs *DirPreparer,
	reporter ports.Reporter,
	tracer ports.Tracer,
	logger ports.Logger,
) *Builder {
	return &Builder{
		assembler: assembler,
		estimator: estimator,
		toolchain: toolchain,
		dirs:      dirs,
		reporter:  reporter,
		tracer:    tracer,
		logger:    logger,
		now:       time.Now,
	}
}

// BuildAll builds the app and, for fullstack requests, the server.
// The two builds run concurrently unless the request asks for sequential builds.
func (b *Builder) BuildAll(ctx context.Context, req *domain.BuildRequest) (*domain.AppBuild, error) {
	ctx, span := b.tracer.Start(ctx, "build_all",
		ports.WithAttribute("weld.platform", req.Platform().String()),
		ports.WithAttribute("weld.fullstack", req.Args.Fullstack),
	)
	defer span.End()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	var result domain.AppBuild

	if req.Args.Sequential {
		app, err := b.Build(ctx, req)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		server, err := b.BuildServer(ctx, req)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		result.App, result.Server = app, server
		return &result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app, err := b.Build(gctx, req)
		result.App = app
		return err
	})
	g.Go(func() error {
		server, err := b.BuildServer(gctx, req)
		result.Server = server
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &result, nil
}

// BuildServer builds the server half of a fullstack request. It returns nil
// artifacts when the request is not fullstack.
func (b *Builder) BuildServer(ctx context.Context, req *domain.BuildRequest) (*domain.BuildArtifacts, error) {
	if !req.Args.Fullstack {
		return nil, nil
	}
	return b.Build(ctx, req.ForServer())
}

// Build runs the toolchain once for req and returns the produced artifacts.
func (b *Builder) Build(ctx context.Context, req *domain.BuildRequest) (*domain.BuildArtifacts, error) {
	platform := req.Platform()
	ctx, span := b.tracer.Start(ctx, "build",
		ports.WithAttribute("weld.platform", platform.String()),
		ports.WithAttribute("weld.mode", req.Mode.Kind.String()),
		ports.WithAttribute("weld.release", req.Args.Release),
	)
	defer span.End()

	artifacts, err := b.build(ctx, req)
	if err != nil {
		span.RecordError(err)
		b.reporter.OnBuildComplete(platform, nil, err)
		return nil, err
	}

	span.SetAttribute("weld.executable", artifacts.Executable)
	b.reporter.OnBuildComplete(platform, artifacts, nil)
	return artifacts, nil
}

func (b *Builder) build(ctx context.Context, req *domain.BuildRequest) (*domain.BuildArtifacts, error) {
	start := b.now()
	platform := req.Platform()

	if err := req.Mode.Validate(); err != nil {
		return nil, err
	}

	if err := b.prepare(ctx, req); err != nil {
		return nil, err
	}

	cmd, err := b.assembler.Assemble(req)
	if err != nil {
		return nil, err
	}
	b.logger.Debug(fmt.Sprintf("executing toolchain command: %s", cmd))

	total := b.estimate(ctx, req, cmd)
	b.reporter.OnBuildStart(platform, total)

	parser := events.NewParser(platform, total, b.reporter, events.NewStickyErrorLatch())

	runCtx, span := b.tracer.Start(ctx, "toolchain",
		ports.WithAttribute("weld.platform", platform.String()),
		ports.WithAttribute("weld.units", total),
	)
	defer span.End()

	proc, err := b.toolchain.Spawn(runCtx, cmd)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Join(domain.ErrToolchainSpawnFailed, err)
	}

	waitErr, err := supervise(runCtx, proc, parser.FeedLine, b.logger)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	exe, direct, err := parser.Finish()
	if err != nil {
		if waitErr != nil {
			err = errors.Join(err, waitErr)
		}
		span.RecordError(err)
		return nil, err
	}
	if waitErr != nil {
		b.logger.Warn(fmt.Sprintf("toolchain exited with an error after producing %s: %v", exe, waitErr))
	}
	span.SetAttribute("weld.units_built", parser.Units())

	return &domain.BuildArtifacts{
		BuildID:     req.ID,
		Platform:    platform,
		Executable:  exe,
		DirectRustc: direct,
		Elapsed:     b.now().Sub(start),
	}, nil
}

func (b *Builder) prepare(ctx context.Context, req *domain.BuildRequest) error {
	_, span := b.tracer.Start(ctx, "prepare_build_dir")
	defer span.End()

	if err := b.dirs.Prepare(req.Layout()); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (b *Builder) estimate(ctx context.Context, req *domain.BuildRequest, cmd domain.Command) int {
	if req.Mode.Kind == domain.ModeThin {
		return 1
	}

	ctx, span := b.tracer.Start(ctx, "estimate_units")
	defer span.End()

	total := b.estimator.Estimate(ctx, req, cmd)
	span.SetAttribute("weld.units", total)
	return total
}
