// Package app implements the application layer for weld.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.trai.ch/weld/internal/adapters/detector"
	"go.trai.ch/weld/internal/adapters/telemetry"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildRunner runs the builds of a request.
type BuildRunner interface {
	BuildAll(ctx context.Context, req *domain.BuildRequest) (*domain.AppBuild, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	metadata     ports.MetadataResolver
	builder      BuildRunner
	store        ports.InvocationStore
	linker       ports.Linker
	reporter     ports.Reporter
	logger       ports.Logger

	getwd      func() (string, error)
	executable func() (string, error)
	now        func() time.Time
	detect     func() detector.OutputMode
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	metadata ports.MetadataResolver,
	builder BuildRunner,
	store ports.InvocationStore,
	linker ports.Linker,
	reporter ports.Reporter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		metadata:     metadata,
		builder:      builder,
		store:        store,
		linker:       linker,
		reporter:     reporter,
		logger:       log,
		getwd:        os.Getwd,
		executable:   canonicalExecutable(os.Executable),
		now:          time.Now,
		detect:       detector.DetectEnvironment,
	}
}

// WithWorkingDir fixes the directory builds are resolved from.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// canonicalExecutable resolves the path returned by resolve to an absolute path
// with every symlink evaluated.
func canonicalExecutable(resolve func() (string, error)) func() (string, error) {
	return func() (string, error) {
		path, err := resolve()
		if err != nil {
			return "", err
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to make path absolute"), "path", path)
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to evaluate symlinks"), "path", abs)
		}
		return resolved, nil
	}
}

// WithExecutable fixes the path handed to the toolchain as its linker.
func (a *App) WithExecutable(path string) *App {
	a.executable = func() (string, error) { return path, nil }
	return a
}

// WithClock replaces the clock used to stamp invocation records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Args domain.BuildArgs
	// Fat keeps symbols and records compiler invocations for later patches.
	Fat bool
	// Patch builds a thin patch against the last fat build of the same target.
	Patch bool
	// PatchTarget overrides the binary being patched. Defaults to the recorded executable.
	PatchTarget string
	// MainPtr is the address of main inside the patch target.
	MainPtr uint64

	Verbose    bool
	JSON       bool
	OutputMode string
}

type verboseSetter interface {
	SetVerbose(enable bool)
}

type jsonSetter interface {
	SetJSON(enable bool)
}

type progressSetter interface {
	SetProgress(enable bool)
}

// Build resolves the crate in the working directory and builds it.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*domain.AppBuild, error) {
	a.configureOutput(opts)

	tp := telemetry.NewProvider(a.logger)
	otel.SetTracerProvider(tp)
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	req, err := a.prepareRequest(ctx, opts)
	if err != nil {
		return nil, err
	}

	result, err := a.builder.BuildAll(ctx, req)
	if err != nil {
		return nil, errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	if req.Mode.Kind == domain.ModeFat && result.App != nil {
		if err := a.record(req, result.App); err != nil {
			return result, err
		}
	}

	return result, nil
}

// Link performs a link step on behalf of the toolchain. payload is the
// encoded intent found in the environment and args are the linker arguments.
func (a *App) Link(ctx context.Context, payload string, args []string) error {
	intent, err := domain.DecodeLinkIntent(payload)
	if err != nil {
		return err
	}
	return a.linker.Link(ctx, intent, args)
}

func (a *App) configureOutput(opts BuildOptions) {
	if l, ok := a.logger.(verboseSetter); ok {
		l.SetVerbose(opts.Verbose)
	}
	if l, ok := a.logger.(jsonSetter); ok {
		l.SetJSON(opts.JSON)
	}
	if r, ok := a.reporter.(progressSetter); ok {
		mode := detector.ResolveMode(a.detect(), opts.OutputMode)
		r.SetProgress(mode == detector.ModeProgress && !opts.JSON)
	}
}

func (a *App) prepareRequest(ctx context.Context, opts BuildOptions) (*domain.BuildRequest, error) {
	cwd, err := a.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	ws, err := a.metadata.Resolve(ctx, cwd)
	if err != nil {
		return nil, err
	}

	crate, err := domain.SelectCrate(ws, domain.CrateSelector{
		Package: opts.Args.TargetArgs.Package,
		Bin:     opts.Args.TargetArgs.Bin,
		Example: opts.Args.TargetArgs.Example,
	})
	if err != nil {
		return nil, err
	}

	self, err := a.executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve weld executable")
	}

	args := opts.Args.Clone()
	if args.ServerProfile == "" {
		args.ServerProfile = cfg.ServerProfile
	}

	req := &domain.BuildRequest{
		Args:       args,
		Crate:      crate,
		Config:     cfg,
		Mode:       domain.BaseMode(),
		LinkerPath: self,
	}

	switch {
	case opts.Patch:
		mode, err := a.thinMode(req, opts)
		if err != nil {
			return nil, err
		}
		req.Mode = mode
	case opts.Fat:
		req.Mode = domain.FatMode()
	}

	a.logger.Debug(fmt.Sprintf("building %s (%s) for %s in %s mode",
		crate.Target.Name, crate.Kind, req.Platform(), req.Mode.Kind))
	return req, nil
}

func (a *App) thinMode(req *domain.BuildRequest, opts BuildOptions) (domain.BuildMode, error) {
	key := domain.InvocationKey(req)
	rec, err := a.store.Get(req.Config.Root, key)
	if err != nil {
		return domain.BuildMode{}, err
	}
	if rec == nil {
		return domain.BuildMode{}, zerr.With(domain.ErrNoInvocationRecord, "target", key)
	}

	binary := opts.PatchTarget
	if binary == "" {
		binary = rec.Executable
	}

	mode := domain.ThinMode(rec.DirectRustc, domain.PatchTarget{Binary: binary, MainPtr: opts.MainPtr})
	if err := mode.Validate(); err != nil {
		return domain.BuildMode{}, err
	}
	return mode, nil
}

func (a *App) record(req *domain.BuildRequest, artifacts *domain.BuildArtifacts) error {
	rec := domain.InvocationRecord{
		Key:         domain.InvocationKey(req),
		BuildID:     artifacts.BuildID,
		Platform:    artifacts.Platform,
		Executable:  artifacts.Executable,
		DirectRustc: artifacts.DirectRustc,
		RecordedAt:  a.now().UTC(),
	}
	if err := a.store.Put(req.Config.Root, rec); err != nil {
		return zerr.Wrap(err, "failed to record fat build")
	}
	a.logger.Debug(fmt.Sprintf("recorded %d compiler invocations for %s", len(rec.DirectRustc), rec.Key))
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Store removes the recorded fat build invocations.
	Store bool
}

// Clean removes weld state from the project containing the working directory.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	if !options.Store {
		return nil
	}

	cwd, err := a.getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to resolve working directory")
	}
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	path := filepath.Join(cfg.Root, domain.DefaultStorePath())
	a.logger.Info("removing invocation store...")
	if err := os.RemoveAll(path); err != nil {
		return zerr.Wrap(err, "failed to remove invocation store")
	}
	a.logger.Info("removed invocation store")
	return nil
}
