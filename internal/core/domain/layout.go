package domain

import (
	"os"
	"path/filepath"
)

const (
	// DirPerm is the default permission for directories created by weld.
	DirPerm os.FileMode = 0o750
	// FilePerm is the default permission for files created by weld.
	FilePerm os.FileMode = 0o600

	// WeldDirName is the directory weld keeps its own state in, relative to the project root.
	WeldDirName = ".weld"
	// StoreDirName is the invocation store directory inside WeldDirName.
	StoreDirName = "store"

	// AndroidPackage is the java package of the generated android project.
	AndroidPackage = "dev.weld.main"
	// AndroidLibraryName is the name of the native library loaded by the android activity.
	AndroidLibraryName = "weldmain"
)

// DefaultStorePath returns the invocation store path relative to the project root.
func DefaultStorePath() string {
	return filepath.Join(WeldDirName, StoreDirName)
}

// BuildDir returns the per-platform build directory:
// <target-dir>/weld/<executable>/<debug|release>/<platform>.
func BuildDir(targetDir, executable string, release bool, platform Platform) string {
	return filepath.Join(targetDir, "weld", executable, ProfileDirName(release), platform.String())
}

// Layout resolves where a platform expects each produced file to live.
// It is pure: nothing here touches the filesystem.
type Layout struct {
	BuildDir string
	Platform Platform
	Release  bool
	// AppName names the bundle on macOS and iOS.
	AppName string
	Arch    Arch
}

// NewLayout creates a Layout rooted at buildDir.
func NewLayout(buildDir string, platform Platform, release bool, appName string, arch Arch) Layout {
	return Layout{
		BuildDir: buildDir,
		Platform: platform,
		Release:  release,
		AppName:  appName,
		Arch:     arch.OrDefault(),
	}
}

// RootDir returns the top level directory of the platform's bundle.
func (l Layout) RootDir() string {
	switch l.Platform {
	case PlatformWeb:
		return filepath.Join(l.BuildDir, "public")
	case PlatformServer:
		return l.BuildDir
	case PlatformMacOS, PlatformIOS:
		return filepath.Join(l.BuildDir, l.AppName+".app")
	default:
		return filepath.Join(l.BuildDir, "app")
	}
}

// ExeDir returns the directory the final executable is placed in.
func (l Layout) ExeDir() string {
	root := l.RootDir()
	switch l.Platform {
	case PlatformMacOS:
		return filepath.Join(root, "Contents", "MacOS")
	case PlatformWeb:
		return filepath.Join(root, "wasm")
	case PlatformAndroid:
		return filepath.Join(root, "app", "src", "main", "jniLibs", l.Arch.AndroidABI())
	default:
		return root
	}
}

// AssetDir returns the directory bundled assets are copied into.
func (l Layout) AssetDir() string {
	root := l.RootDir()
	switch l.Platform {
	case PlatformMacOS:
		return filepath.Join(root, "Contents", "Resources", "assets")
	case PlatformAndroid:
		return filepath.Join(root, "app", "src", "main", "assets")
	default:
		return filepath.Join(root, "assets")
	}
}

// IncrementalCacheDir holds linker intermediates shared between fat and thin builds.
func (l Layout) IncrementalCacheDir() string {
	return filepath.Join(l.BuildDir, "incremental-cache")
}

// WasmBindgenOutDir is where wasm-bindgen writes its output.
func (l Layout) WasmBindgenOutDir() string {
	return filepath.Join(l.RootDir(), "wasm")
}

// WasmBindgenJSFile returns the generated javascript glue file for exe.
func (l Layout) WasmBindgenJSFile(exe string) string {
	return filepath.Join(l.WasmBindgenOutDir(), exe+".js")
}

// WasmBindgenWasmFile returns the generated wasm module for exe.
func (l Layout) WasmBindgenWasmFile(exe string) string {
	return filepath.Join(l.WasmBindgenOutDir(), exe+"_bg.wasm")
}

// AndroidKotlinOutDir is where the android bindings write generated kotlin sources.
func (l Layout) AndroidKotlinOutDir() string {
	return filepath.Join(l.RootDir(), "app", "src", "main", "kotlin", "dev", "weld", "main")
}

// ToolVersionFile records which weld version produced the build directory.
func (l Layout) ToolVersionFile() string {
	return filepath.Join(l.BuildDir, ".cli-version")
}

// PlatformExeName returns the file name the platform expects for exe.
// Web has no native executable and returns ErrNoWebExecutable.
func (l Layout) PlatformExeName(exe string) (string, error) {
	switch l.Platform {
	case PlatformWindows:
		return exe + ".exe", nil
	case PlatformAndroid:
		return "lib" + AndroidLibraryName + ".so", nil
	case PlatformWeb:
		return "", ErrNoWebExecutable
	default:
		return exe, nil
	}
}

// MainExePath returns the full path of the executable inside ExeDir.
func (l Layout) MainExePath(exe string) (string, error) {
	name, err := l.PlatformExeName(exe)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.ExeDir(), name), nil
}
