// Package android locates the Android NDK used to cross compile android builds.
package android

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/zerr"
)

// ndkEnvVars are checked in order for an explicit NDK location.
var ndkEnvVars = []string{"ANDROID_NDK_HOME", "ANDROID_NDK_ROOT", "NDK_HOME"}

// sdkEnvVars are checked in order for an SDK whose ndk/ directory holds side by side installs.
var sdkEnvVars = []string{"ANDROID_HOME", "ANDROID_SDK_ROOT"}

// studioJBR is where Android Studio bundles a JDK, per host OS.
var studioJBR = map[string]string{
	"darwin":  "/Applications/Android Studio.app/Contents/jbr/Contents/Home",
	"linux":   "/opt/android-studio/jbr",
	"windows": `C:\Program Files\Android\Android Studio\jbr`,
}

// Locator implements ports.AndroidToolchain.
type Locator struct {
	getenv func(string) string
	goos   string
}

// NewLocator creates a Locator reading the process environment.
func NewLocator() *Locator {
	return &Locator{
		getenv: os.Getenv,
		goos:   runtime.GOOS,
	}
}

// Locate returns the NDK configured in the environment, or the newest NDK
// installed into the Android SDK.
func (l *Locator) Locate() (*domain.AndroidNDK, error) {
	root := l.ndkRoot()
	if root == "" {
		return nil, domain.ErrAndroidNDKNotFound
	}

	binDir := filepath.Join(root, "toolchains", "llvm", "prebuilt", hostTag(l.goos), "bin")
	if !isDir(binDir) {
		return nil, zerr.With(domain.ErrAndroidNDKNotFound, "toolchain_dir", binDir)
	}

	return &domain.AndroidNDK{
		Root:     root,
		BinDir:   binDir,
		JavaHome: l.javaHome(),
	}, nil
}

func (l *Locator) ndkRoot() string {
	for _, key := range ndkEnvVars {
		if dir := l.getenv(key); dir != "" && isDir(dir) {
			return dir
		}
	}

	for _, key := range sdkEnvVars {
		sdk := l.getenv(key)
		if sdk == "" {
			continue
		}
		if newest := newestVersionDir(filepath.Join(sdk, "ndk")); newest != "" {
			return newest
		}
	}
	return ""
}

// javaHome returns Android Studio's bundled JDK when JAVA_HOME is unset.
func (l *Locator) javaHome() string {
	if l.getenv("JAVA_HOME") != "" {
		return ""
	}
	if jbr, ok := studioJBR[l.goos]; ok && isDir(jbr) {
		return jbr
	}
	return ""
}

func hostTag(goos string) string {
	switch goos {
	case "darwin":
		return "darwin-x86_64"
	case "windows":
		return "windows-x86_64"
	default:
		return "linux-x86_64"
	}
}

// newestVersionDir returns the subdirectory of dir with the highest dotted version name.
func newestVersionDir(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var best string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if best == "" || compareVersions(e.Name(), best) > 0 {
			best = e.Name()
		}
	}
	if best == "" {
		return ""
	}
	return filepath.Join(dir, best)
}

// compareVersions compares dotted numeric versions. Non numeric parts compare as zero.
func compareVersions(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var x, y int
		if i < len(as) {
			x, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			y, _ = strconv.Atoi(bs[i])
		}
		if x != y {
			if x > y {
				return 1
			}
			return -1
		}
	}
	return 0
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
