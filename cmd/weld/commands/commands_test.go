package commands_test

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/cmd/weld/commands"
	"go.trai.ch/weld/internal/app"
	"go.trai.ch/weld/internal/build"
	"go.trai.ch/weld/internal/core/domain"
)

type mockApp struct {
	buildFunc func(ctx context.Context, opts app.BuildOptions) (*domain.AppBuild, error)
	cleaned   *app.CleanOptions
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) (*domain.AppBuild, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return &domain.AppBuild{}, nil
}

func (m *mockApp) Clean(_ context.Context, opts app.CleanOptions) error {
	m.cleaned = &opts
	return nil
}

func runBuild(t *testing.T, args ...string) (app.BuildOptions, error) {
	t.Helper()
	var captured app.BuildOptions
	mock := &mockApp{
		buildFunc: func(_ context.Context, opts app.BuildOptions) (*domain.AppBuild, error) {
			captured = opts
			return &domain.AppBuild{}, nil
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs(append([]string{"build"}, args...))
	err := cli.Execute(context.Background())
	return captured, err
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		opts, err := runBuild(t,
			"--platform", "web",
			"--release",
			"--fullstack",
			"--sequential",
			"--package", "demo",
			"--features", "a,b",
			"--client-features", "ui",
			"--server-features", "db",
			"--no-default-features",
			"--target-dir", "/tmp/target",
			"--experimental-wasm-split",
			"--verbose",
			"--ci",
			"--", "--locked", "--offline",
		)
		require.NoError(t, err)

		args := opts.Args
		assert.Equal(t, domain.PlatformWeb, args.Platform)
		assert.True(t, args.Release)
		assert.True(t, args.Fullstack)
		assert.True(t, args.Sequential)
		assert.True(t, args.ExperimentalWasmSplit)
		assert.Equal(t, "/tmp/target", args.TargetDir)
		assert.Equal(t, []string{"--locked", "--offline"}, args.CargoArgs)
		assert.Equal(t, "demo", args.TargetArgs.Package)
		assert.Equal(t, []string{"a", "b"}, args.TargetArgs.Features)
		assert.Equal(t, []string{"ui"}, args.TargetArgs.ClientFeatures)
		assert.Equal(t, []string{"db"}, args.TargetArgs.ServerFeatures)
		assert.True(t, args.TargetArgs.NoDefaultFeatures)
		assert.True(t, opts.Verbose)
		assert.Equal(t, "linear", opts.OutputMode)
	})

	t.Run("defaults to host platform", func(t *testing.T) {
		opts, err := runBuild(t)
		require.NoError(t, err)
		assert.Equal(t, domain.HostPlatform(runtime.GOOS), opts.Args.Platform)
		assert.Equal(t, "auto", opts.OutputMode)
		assert.False(t, opts.Fat)
		assert.False(t, opts.Patch)
	})

	t.Run("mobile target", func(t *testing.T) {
		opts, err := runBuild(t, "-p", "android", "--arch", "x86_64", "--device")
		require.NoError(t, err)
		assert.Equal(t, domain.PlatformAndroid, opts.Args.Platform)
		assert.Equal(t, domain.ArchX64, opts.Args.TargetArgs.Arch)
		assert.True(t, opts.Args.TargetArgs.Device)
	})

	t.Run("patch flags", func(t *testing.T) {
		opts, err := runBuild(t, "--patch", "--main-ptr", "0x1f40", "--patch-target", "/dev/demo")
		require.NoError(t, err)
		assert.True(t, opts.Patch)
		assert.Equal(t, uint64(0x1f40), opts.MainPtr)
		assert.Equal(t, "/dev/demo", opts.PatchTarget)
	})

	t.Run("fat", func(t *testing.T) {
		opts, err := runBuild(t, "--fat", "--json")
		require.NoError(t, err)
		assert.True(t, opts.Fat)
		assert.True(t, opts.JSON)
	})
}

func TestCommands_BuildErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown platform", []string{"-p", "amiga"}, "unknown platform"},
		{"unknown arch", []string{"--arch", "mips"}, "unknown architecture"},
		{"fat and patch", []string{"--fat", "--patch"}, "cannot be combined"},
		{"patch flags without patch", []string{"--main-ptr", "1"}, "require --patch"},
		{"bad main ptr", []string{"--patch", "--main-ptr", "zz"}, "invalid --main-ptr"},
		{"positional args", []string{"demo"}, "unexpected arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runBuild(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCommands_BuildFailure(t *testing.T) {
	mock := &mockApp{
		buildFunc: func(_ context.Context, _ app.BuildOptions) (*domain.AppBuild, error) {
			return nil, errors.New("simulated error")
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"build"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, mock.cleaned)
	assert.True(t, mock.cleaned.Store)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), "weld version")
}
