package command

import (
	"maps"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/zerr"
)

// LinkerTable maps each platform to the linker the substitute linker delegates to.
// Entries are explicit so a platform without a known linker fails loudly instead of guessing.
type LinkerTable map[domain.Platform]string

// DefaultLinkerTable delegates every platform to the system C compiler driver.
// Android replaces its entry with the NDK clang wrapper at assembly time.
func DefaultLinkerTable() LinkerTable {
	return LinkerTable{
		domain.PlatformWeb:      "cc",
		domain.PlatformMacOS:    "cc",
		domain.PlatformWindows:  "cc",
		domain.PlatformLinux:    "cc",
		domain.PlatformIOS:      "cc",
		domain.PlatformAndroid:  "cc",
		domain.PlatformServer:   "cc",
		domain.PlatformLiveview: "cc",
	}
}

// WithOverrides returns a copy of the table with entries replaced by overrides,
// keyed by platform name. Unknown platform names are ignored.
func (t LinkerTable) WithOverrides(overrides map[string]string) LinkerTable {
	out := maps.Clone(t)
	if out == nil {
		out = LinkerTable{}
	}
	for name, linker := range overrides {
		p, err := domain.ParsePlatform(name)
		if err != nil || linker == "" {
			continue
		}
		out[p] = linker
	}
	return out
}

// Lookup returns the linker for platform.
func (t LinkerTable) Lookup(platform domain.Platform) (string, error) {
	linker, ok := t[platform]
	if !ok || linker == "" {
		return "", zerr.With(domain.ErrLinkerNotConfigured, "platform", platform.String())
	}
	return linker, nil
}
