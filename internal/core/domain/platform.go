package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Platform is the target platform an application is built for.
type Platform string

const (
	// PlatformWeb builds a wasm bundle served from a public directory.
	PlatformWeb Platform = "web"
	// PlatformMacOS builds a macOS .app bundle.
	PlatformMacOS Platform = "macos"
	// PlatformWindows builds a Windows desktop executable.
	PlatformWindows Platform = "windows"
	// PlatformLinux builds a Linux desktop executable.
	PlatformLinux Platform = "linux"
	// PlatformIOS builds an iOS .app bundle for a device or the simulator.
	PlatformIOS Platform = "ios"
	// PlatformAndroid builds a shared library inside a gradle project tree.
	PlatformAndroid Platform = "android"
	// PlatformServer builds the server half of a fullstack application.
	PlatformServer Platform = "server"
	// PlatformLiveview builds a server rendering views over a websocket.
	PlatformLiveview Platform = "liveview"
)

// Platforms lists every supported platform.
var Platforms = []Platform{
	PlatformWeb,
	PlatformMacOS,
	PlatformWindows,
	PlatformLinux,
	PlatformIOS,
	PlatformAndroid,
	PlatformServer,
	PlatformLiveview,
}

// ParsePlatform converts a user supplied name into a Platform.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "web", "wasm":
		return PlatformWeb, nil
	case "macos", "mac", "darwin":
		return PlatformMacOS, nil
	case "windows":
		return PlatformWindows, nil
	case "linux":
		return PlatformLinux, nil
	case "ios":
		return PlatformIOS, nil
	case "android":
		return PlatformAndroid, nil
	case "server", "fullstack-server":
		return PlatformServer, nil
	case "liveview":
		return PlatformLiveview, nil
	default:
		return "", zerr.With(ErrUnknownPlatform, "platform", name)
	}
}

// HostPlatform returns the desktop platform matching a GOOS value.
func HostPlatform(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// String returns the platform name, also used as its build folder name.
func (p Platform) String() string {
	return string(p)
}

// IsBundle reports whether the platform produces a `<name>.app` bundle root.
func (p Platform) IsBundle() bool {
	return p == PlatformMacOS || p == PlatformIOS
}

// Arch is a mobile CPU architecture.
type Arch string

const (
	// ArchArm64 is 64-bit ARM, the default for mobile builds.
	ArchArm64 Arch = "arm64"
	// ArchArm is 32-bit ARMv7.
	ArchArm Arch = "arm"
	// ArchX86 is 32-bit x86, used by older emulators.
	ArchX86 Arch = "x86"
	// ArchX64 is x86_64, used by emulators.
	ArchX64 Arch = "x86_64"
)

// ParseArch converts a user supplied architecture name. An empty name selects ArchArm64.
func ParseArch(name string) (Arch, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "arm64", "aarch64":
		return ArchArm64, nil
	case "arm", "armv7":
		return ArchArm, nil
	case "x86", "i686":
		return ArchX86, nil
	case "x86_64", "x64", "amd64":
		return ArchX64, nil
	default:
		return "", zerr.With(ErrUnknownArch, "arch", name)
	}
}

// OrDefault returns ArchArm64 when a is unset.
func (a Arch) OrDefault() Arch {
	if a == "" {
		return ArchArm64
	}
	return a
}

// AndroidTriple returns the rust target triple for an Android build on this architecture.
func (a Arch) AndroidTriple() string {
	switch a.OrDefault() {
	case ArchArm:
		return "armv7-linux-androideabi"
	case ArchX86:
		return "i686-linux-android"
	case ArchX64:
		return "x86_64-linux-android"
	default:
		return "aarch64-linux-android"
	}
}

// AndroidABI returns the jniLibs directory name for this architecture.
func (a Arch) AndroidABI() string {
	switch a.OrDefault() {
	case ArchArm:
		return "armeabi-v7a"
	case ArchX86:
		return "x86"
	case ArchX64:
		return "x86_64"
	default:
		return "arm64-v8a"
	}
}

// AndroidClangPrefix returns the NDK clang wrapper prefix for this architecture.
// The armv7 wrappers use a different prefix than the rust triple.
func (a Arch) AndroidClangPrefix() string {
	if a.OrDefault() == ArchArm {
		return "armv7a-linux-androideabi"
	}
	return a.AndroidTriple()
}

// AndroidMinSDKVersion is the native API level android builds target.
const AndroidMinSDKVersion = 24
