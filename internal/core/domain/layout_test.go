package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/internal/core/domain"
)

func TestBuildDir(t *testing.T) {
	got := domain.BuildDir("/ws/target", "demo", true, domain.PlatformWeb)
	assert.Equal(t, filepath.Join("/ws/target", "weld", "demo", "release", "web"), got)

	got = domain.BuildDir("/ws/target", "demo", false, domain.PlatformLinux)
	assert.Equal(t, filepath.Join("/ws/target", "weld", "demo", "debug", "linux"), got)
}

func TestLayout_RootExeAssetDirs(t *testing.T) {
	const build = "/b"

	tests := []struct {
		platform domain.Platform
		root     string
		exe      string
		assets   string
	}{
		{
			platform: domain.PlatformMacOS,
			root:     "/b/Demo.app",
			exe:      "/b/Demo.app/Contents/MacOS",
			assets:   "/b/Demo.app/Contents/Resources/assets",
		},
		{
			platform: domain.PlatformIOS,
			root:     "/b/Demo.app",
			exe:      "/b/Demo.app",
			assets:   "/b/Demo.app/assets",
		},
		{
			platform: domain.PlatformWeb,
			root:     "/b/public",
			exe:      "/b/public/wasm",
			assets:   "/b/public/assets",
		},
		{
			platform: domain.PlatformServer,
			root:     "/b",
			exe:      "/b",
			assets:   "/b/assets",
		},
		{
			platform: domain.PlatformAndroid,
			root:     "/b/app",
			exe:      "/b/app/app/src/main/jniLibs/arm64-v8a",
			assets:   "/b/app/app/src/main/assets",
		},
		{
			platform: domain.PlatformLinux,
			root:     "/b/app",
			exe:      "/b/app",
			assets:   "/b/app/assets",
		},
		{
			platform: domain.PlatformWindows,
			root:     "/b/app",
			exe:      "/b/app",
			assets:   "/b/app/assets",
		},
		{
			platform: domain.PlatformLiveview,
			root:     "/b/app",
			exe:      "/b/app",
			assets:   "/b/app/assets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			l := domain.NewLayout(build, tt.platform, false, "Demo", "")
			assert.Equal(t, filepath.FromSlash(tt.root), l.RootDir())
			assert.Equal(t, filepath.FromSlash(tt.exe), l.ExeDir())
			assert.Equal(t, filepath.FromSlash(tt.assets), l.AssetDir())
		})
	}
}

func TestLayout_AndroidABIFollowsArch(t *testing.T) {
	l := domain.NewLayout("/b", domain.PlatformAndroid, false, "Demo", domain.ArchX64)
	assert.Equal(t, filepath.FromSlash("/b/app/app/src/main/jniLibs/x86_64"), l.ExeDir())
	assert.Equal(t, filepath.FromSlash("/b/app/app/src/main/kotlin/dev/weld/main"), l.AndroidKotlinOutDir())
}

func TestLayout_Files(t *testing.T) {
	l := domain.NewLayout("/b", domain.PlatformWeb, true, "Demo", "")

	assert.Equal(t, filepath.FromSlash("/b/incremental-cache"), l.IncrementalCacheDir())
	assert.Equal(t, filepath.FromSlash("/b/.cli-version"), l.ToolVersionFile())
	assert.Equal(t, filepath.FromSlash("/b/public/wasm"), l.WasmBindgenOutDir())
	assert.Equal(t, filepath.FromSlash("/b/public/wasm/demo.js"), l.WasmBindgenJSFile("demo"))
	assert.Equal(t, filepath.FromSlash("/b/public/wasm/demo_bg.wasm"), l.WasmBindgenWasmFile("demo"))
}

func TestLayout_PlatformExeName(t *testing.T) {
	tests := []struct {
		platform domain.Platform
		want     string
	}{
		{domain.PlatformWindows, "demo.exe"},
		{domain.PlatformAndroid, "libweldmain.so"},
		{domain.PlatformLinux, "demo"},
		{domain.PlatformMacOS, "demo"},
		{domain.PlatformServer, "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			l := domain.NewLayout("/b", tt.platform, false, "Demo", "")
			got, err := l.PlatformExeName("demo")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("web has no executable", func(t *testing.T) {
		l := domain.NewLayout("/b", domain.PlatformWeb, false, "Demo", "")
		_, err := l.PlatformExeName("demo")
		require.ErrorIs(t, err, domain.ErrNoWebExecutable)

		_, err = l.MainExePath("demo")
		require.ErrorIs(t, err, domain.ErrNoWebExecutable)
	})
}

func TestLayout_IsPure(t *testing.T) {
	dir := t.TempDir()
	build := filepath.Join(dir, "never-created")

	for _, p := range domain.Platforms {
		l := domain.NewLayout(build, p, true, "Demo", "")
		first := []string{l.RootDir(), l.ExeDir(), l.AssetDir(), l.IncrementalCacheDir()}
		second := []string{l.RootDir(), l.ExeDir(), l.AssetDir(), l.IncrementalCacheDir()}
		assert.Equal(t, first, second)
	}

	assert.NoDirExists(t, build)
}

func TestDefaultStorePath(t *testing.T) {
	assert.Equal(t, filepath.Join(".weld", "store"), domain.DefaultStorePath())
}
