package builder_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/weld/internal/core/ports/mocks"
	"go.trai.ch/weld/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

type fakeProcess struct {
	stdout  io.Reader
	stderr  io.Reader
	waitErr error

	mu     sync.Mutex
	killed bool
	waited bool
}

func newFakeProcess(stdout, stderr []string) *fakeProcess {
	return &fakeProcess{
		stdout: strings.NewReader(joinLines(stdout)),
		stderr: strings.NewReader(joinLines(stderr)),
	}
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (p *fakeProcess) Stdout() io.Reader { return p.stdout }
func (p *fakeProcess) Stderr() io.Reader { return p.stderr }

func (p *fakeProcess) Wait() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.waited = true
	return p.waitErr
}

func (p *fakeProcess) Kill() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.killed = true
	return nil
}

type fakeAssembler struct{}

func (fakeAssembler) Assemble(req *domain.BuildRequest) (domain.Command, error) {
	return domain.Command{
		Program: "cargo",
		Args:    []string{"rustc", "--profile", "dev"},
		Env:     []domain.EnvVar{{Key: domain.LinkActionEnv, Value: "{}"}},
		Dir:     req.Crate.Dir(),
	}, nil
}

type fakeEstimator struct {
	units int
	calls atomic.Int32
}

func (e *fakeEstimator) Estimate(context.Context, *domain.BuildRequest, domain.Command) int {
	e.calls.Add(1)
	return e.units
}

type builderMocks struct {
	toolchain *mocks.MockToolchain
	reporter  *mocks.MockReporter
	tracer    *mocks.MockTracer
	logger    *mocks.MockLogger
	estimator *fakeEstimator
}

func setupBuilderTest(t *testing.T) (*builder.Builder, *builderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &builderMocks{
		toolchain: mocks.NewMockToolchain(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
		tracer:    mocks.NewMockTracer(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		estimator: &fakeEstimator{units: 7},
	}

	mockSpan := mocks.NewMockSpan(ctrl)
	mockSpan.EXPECT().End().AnyTimes()
	mockSpan.EXPECT().RecordError(gomock.Any()).AnyTimes()
	mockSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, mockSpan
		},
	).AnyTimes()

	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	m.reporter.EXPECT().OnBuildMessage(gomock.Any(), gomock.Any()).AnyTimes()
	m.reporter.EXPECT().OnBuildError(gomock.Any(), gomock.Any()).AnyTimes()
	m.reporter.EXPECT().OnDiagnostic(gomock.Any(), gomock.Any()).AnyTimes()
	m.reporter.EXPECT().OnBuildProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	dirs := builder.NewDirPreparer(nil, m.logger)
	b := builder.New(fakeAssembler{}, m.estimator, m.toolchain, dirs, m.reporter, m.tracer, m.logger)
	return b, m
}

func testRequest(t *testing.T, platform domain.Platform) *domain.BuildRequest {
	t.Helper()
	root := t.TempDir()
	ws := &domain.Workspace{
		Root:      root,
		TargetDir: root + "/target",
		Members:   []string{"demo 0.1.0"},
		Packages: []domain.Package{{
			ID:           "demo 0.1.0",
			Name:         "demo",
			ManifestPath: root + "/Cargo.toml",
			Targets:      []domain.Target{{Name: "demo", Kind: []string{"bin"}}},
		}},
	}
	crate, err := domain.SelectCrate(ws, domain.CrateSelector{})
	require.NoError(t, err)

	return &domain.BuildRequest{
		ID:     "build-1",
		Args:   domain.BuildArgs{Platform: platform},
		Crate:  crate,
		Config: domain.DefaultProjectConfig(root),
		Mode:   domain.BaseMode(),
	}
}

const (
	libArtifact    = `{"reason":"compiler-artifact","package_id":"serde","target":{"name":"serde","kind":["lib"]},"executable":null}`
	binArtifact    = `{"reason":"compiler-artifact","package_id":"demo","target":{"name":"demo","kind":["bin"]},"executable":"/t/debug/demo"}`
	buildSucceeded = `{"reason":"build-finished","success":true}`
	buildFailed    = `{"reason":"build-finished","success":false}`
)

func TestBuild_ProducesArtifacts(t *testing.T) {
	b, m := setupBuilderTest(t)
	req := testRequest(t, domain.PlatformLinux)

	proc := newFakeProcess(
		[]string{libArtifact, binArtifact, buildSucceeded},
		[]string{"   Compiling demo v0.1.0", "     Running `rustc --crate-name demo src/main.rs`"},
	)
	m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(proc, nil)
	m.reporter.EXPECT().OnBuildStart(domain.PlatformLinux, 7)
	m.reporter.EXPECT().OnBuildComplete(domain.PlatformLinux, gomock.Not(gomock.Nil()), nil)

	artifacts, err := b.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "build-1", artifacts.BuildID)
	assert.Equal(t, domain.PlatformLinux, artifacts.Platform)
	assert.Equal(t, "/t/debug/demo", artifacts.Executable)
	assert.Equal(t, [][]string{{"rustc", "--crate-name", "demo", "src/main.rs"}}, artifacts.DirectRustc)
	assert.True(t, proc.waited)
	assert.False(t, proc.killed)
	assert.DirExists(t, req.Layout().ExeDir())
	assert.DirExists(t, req.Layout().AssetDir())
}

func TestBuild_FailedBuildIsFatalAfterExecutable(t *testing.T) {
	b, m := setupBuilderTest(t)
	req := testRequest(t, domain.PlatformLinux)

	proc := newFakeProcess([]string{binArtifact, buildFailed, libArtifact}, nil)
	m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(proc, nil)
	m.reporter.EXPECT().OnBuildStart(domain.PlatformLinux, 7)
	m.reporter.EXPECT().OnBuildComplete(domain.PlatformLinux, nil, gomock.Any())

	artifacts, err := b.Build(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrToolchainFailed)
	assert.Nil(t, artifacts)
	assert.True(t, proc.killed)
	assert.True(t, proc.waited)
}

func TestBuild_SkipsOverlongLine(t *testing.T) {
	b, m := setupBuilderTest(t)
	req := testRequest(t, domain.PlatformLinux)

	huge := strings.Repeat("x", 9<<20)
	proc := &fakeProcess{
		stdout: strings.NewReader(joinLines([]string{huge, binArtifact, buildSucceeded})),
		stderr: strings.NewReader(joinLines([]string{huge + "\r", "   Compiling demo v0.1.0"})),
	}
	m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(proc, nil)
	m.reporter.EXPECT().OnBuildStart(domain.PlatformLinux, 7)
	m.reporter.EXPECT().OnBuildComplete(domain.PlatformLinux, gomock.Not(gomock.Nil()), nil)

	artifacts, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/t/debug/demo", artifacts.Executable)
	assert.True(t, proc.waited)
}

func TestBuild_OverlongLineKeepsPipeDraining(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		b, m := setupBuilderTest(t)
		req := testRequest(t, domain.PlatformLinux)

		stdoutR, stdoutW := io.Pipe()
		proc := &fakeProcess{stdout: stdoutR, stderr: strings.NewReader("")}
		go func() {
			chunk := []byte(strings.Repeat("x", 1<<20))
			for range 10 {
				if _, err := stdoutW.Write(chunk); err != nil {
					return
				}
			}
			_, _ = io.WriteString(stdoutW, "\n"+binArtifact+"\n")
			_ = stdoutW.Close()
		}()

		m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(proc, nil)
		m.reporter.EXPECT().OnBuildStart(domain.PlatformLinux, 7)
		m.reporter.EXPECT().OnBuildComplete(domain.PlatformLinux, gomock.Not(gomock.Nil()), nil)

		artifacts, err := b.Build(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "/t/debug/demo", artifacts.Executable)
	})
}

func TestBuild_MissingExecutable(t *testing.T) {
	b, m := setupBuilderTest(t)
	req := testRequest(t, domain.PlatformLinux)

	proc := newFakeProcess([]string{libArtifact, buildSucceeded}, nil)
	proc.waitErr = errors.New("exit status 101")
	m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(proc, nil)
	m.reporter.EXPECT().OnBuildStart(domain.PlatformLinux, 7)
	m.reporter.EXPECT().OnBuildComplete(domain.PlatformLinux, nil, gomock.Any())

	_, err := b.Build(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrNoExecutable)
	assert.Contains(t, err.Error(), "exit status 101")
}

func TestBuild_SpawnFailure(t *testing.T) {
	b, m := setupBuilderTest(t)
	req := testRequest(t, domain.PlatformLinux)

	m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(nil, errors.New("cargo: not found"))
	m.reporter.EXPECT().OnBuildStart(domain.PlatformLinux, 7)
	m.reporter.EXPECT().OnBuildComplete(domain.PlatformLinux, nil, gomock.Any())

	_, err := b.Build(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrToolchainSpawnFailed)
	assert.Contains(t, err.Error(), "cargo: not found")
}

func TestBuild_ThinUsesSingleUnit(t *testing.T) {
	b, m := setupBuilderTest(t)
	req := testRequest(t, domain.PlatformMacOS)
	req.Mode = domain.ThinMode(
		[][]string{{"rustc", "--crate-name", "demo"}},
		domain.PatchTarget{Binary: "/t/debug/demo", MainPtr: 0x4000},
	)

	proc := newFakeProcess([]string{binArtifact, buildSucceeded}, nil)
	m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(proc, nil)
	m.reporter.EXPECT().OnBuildStart(domain.PlatformMacOS, 1)
	m.reporter.EXPECT().OnBuildComplete(domain.PlatformMacOS, gomock.Any(), nil)

	_, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int32(0), m.estimator.calls.Load())
}

func TestBuild_InvalidThinRequest(t *testing.T) {
	b, m := setupBuilderTest(t)
	req := testRequest(t, domain.PlatformMacOS)
	req.Mode = domain.ThinMode(nil, domain.PatchTarget{Binary: "/t/debug/demo", MainPtr: 1})

	m.reporter.EXPECT().OnBuildComplete(domain.PlatformMacOS, nil, gomock.Any())

	_, err := b.Build(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrThinWithoutInvocations)
}

func TestBuildServer_NotFullstack(t *testing.T) {
	b, _ := setupBuilderTest(t)
	req := testRequest(t, domain.PlatformWeb)

	server, err := b.BuildServer(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, server)
}

func TestBuildAll_Fullstack(t *testing.T) {
	for _, sequential := range []bool{true, false} {
		name := "concurrent"
		if sequential {
			name = "sequential"
		}
		t.Run(name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				b, m := setupBuilderTest(t)
				req := testRequest(t, domain.PlatformLinux)
				req.Args.Fullstack = true
				req.Args.Sequential = sequential

				var spawns atomic.Int32
				m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).DoAndReturn(
					func(context.Context, domain.Command) (ports.Process, error) {
						spawns.Add(1)
						return newFakeProcess([]string{binArtifact, buildSucceeded}, nil), nil
					},
				).Times(2)
				m.reporter.EXPECT().OnBuildStart(domain.PlatformLinux, 7)
				m.reporter.EXPECT().OnBuildStart(domain.PlatformServer, 7)
				m.reporter.EXPECT().OnBuildComplete(domain.PlatformLinux, gomock.Any(), nil)
				m.reporter.EXPECT().OnBuildComplete(domain.PlatformServer, gomock.Any(), nil)

				result, err := b.BuildAll(context.Background(), req)
				require.NoError(t, err)
				require.NotNil(t, result.App)
				require.NotNil(t, result.Server)
				assert.Equal(t, domain.PlatformLinux, result.App.Platform)
				assert.Equal(t, domain.PlatformServer, result.Server.Platform)
				assert.Equal(t, req.ID, result.Server.BuildID)
				assert.Equal(t, int32(2), spawns.Load())
			})
		})
	}
}

func TestBuildAll_AssignsID(t *testing.T) {
	b, m := setupBuilderTest(t)
	req := testRequest(t, domain.PlatformLinux)
	req.ID = ""

	m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).Return(newFakeProcess([]string{binArtifact}, nil), nil)
	m.reporter.EXPECT().OnBuildStart(gomock.Any(), gomock.Any())
	m.reporter.EXPECT().OnBuildComplete(gomock.Any(), gomock.Any(), nil)

	result, err := b.BuildAll(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, req.ID, result.App.BuildID)
	assert.Nil(t, result.Server)
}

func TestBuild_Cancellation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		b, m := setupBuilderTest(t)
		req := testRequest(t, domain.PlatformLinux)

		stdoutR, stdoutW := io.Pipe()
		proc := &fakeProcess{stdout: stdoutR, stderr: strings.NewReader("")}
		proc.waitErr = errors.New("signal: killed")

		ctx, cancel := context.WithCancel(context.Background())
		m.toolchain.EXPECT().Spawn(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ domain.Command) (ports.Process, error) {
				go func() {
					<-ctx.Done()
					_ = stdoutW.Close()
				}()
				return proc, nil
			},
		)
		m.reporter.EXPECT().OnBuildStart(domain.PlatformLinux, 7)
		m.reporter.EXPECT().OnBuildComplete(domain.PlatformLinux, nil, gomock.Any())

		var err error
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, err = b.Build(ctx, req)
		}()

		synctest.Wait()
		cancel()
		<-done

		require.ErrorIs(t, err, context.Canceled)
	})
}
