package domain

// TargetArgs selects what gets compiled and for which target.
type TargetArgs struct {
	// Target overrides the target triple on platforms that have none of their own.
	Target string
	// Device selects a physical device instead of the simulator on iOS.
	Device bool
	// Arch selects the mobile architecture.
	Arch Arch
	// Package selects a workspace member.
	Package string
	// Bin selects a binary target by name.
	Bin string
	// Example selects an example target by name.
	Example string
	// Features are enabled on every platform.
	Features []string
	// ClientFeatures are enabled for every platform except the server.
	ClientFeatures []string
	// ServerFeatures are enabled only for the server.
	ServerFeatures []string
	// NoDefaultFeatures disables the package's default features.
	NoDefaultFeatures bool
}

// BuildArgs is the build configuration consumed by a build request.
type BuildArgs struct {
	Platform Platform
	Release  bool
	// Profile is a custom cargo profile. Release takes precedence.
	Profile string
	// ServerProfile is the cargo profile used for non-release server builds.
	ServerProfile string
	// Fullstack also produces a server build next to the app build.
	Fullstack bool
	// Sequential builds the app and the server one after the other.
	Sequential bool
	// CargoArgs are passed through to cargo before the target selector.
	CargoArgs []string
	// ExperimentalWasmSplit keeps relocation data for the wasm bundle splitter.
	ExperimentalWasmSplit bool
	// TargetDir overrides cargo's target directory.
	TargetDir string

	TargetArgs TargetArgs
}

// DefaultServerProfile is the cargo profile used for debug server builds.
const DefaultServerProfile = "server-dev"

// Clone returns a deep copy of the arguments.
func (a BuildArgs) Clone() BuildArgs {
	c := a
	c.CargoArgs = append([]string(nil), a.CargoArgs...)
	c.TargetArgs.Features = append([]string(nil), a.TargetArgs.Features...)
	c.TargetArgs.ClientFeatures = append([]string(nil), a.TargetArgs.ClientFeatures...)
	c.TargetArgs.ServerFeatures = append([]string(nil), a.TargetArgs.ServerFeatures...)
	return c
}

// ProfileDirName returns the build directory segment for the release flag.
func ProfileDirName(release bool) string {
	if release {
		return "release"
	}
	return "debug"
}
