package domain

import "path/filepath"

// BuildRequest is everything needed to run one toolchain build.
// It is owned by the builder for the duration of the build.
type BuildRequest struct {
	ID     string
	Args   BuildArgs
	Crate  *Crate
	Config *ProjectConfig
	Mode   BuildMode
	// LinkerPath is weld's own resolved executable, used as the substitute linker.
	LinkerPath string
}

// Platform returns the platform being built.
func (r *BuildRequest) Platform() Platform {
	return r.Args.Platform
}

// TargetDir returns the cargo target directory, honouring an explicit override.
func (r *BuildRequest) TargetDir() string {
	if r.Args.TargetDir != "" {
		return r.Args.TargetDir
	}
	if r.Crate != nil && r.Crate.Workspace != nil && r.Crate.Workspace.TargetDir != "" {
		return r.Crate.Workspace.TargetDir
	}
	if r.Crate != nil && r.Crate.Workspace != nil {
		return filepath.Join(r.Crate.Workspace.Root, "target")
	}
	return "target"
}

// Executable returns the name of the produced executable.
func (r *BuildRequest) Executable() string {
	return r.Crate.ExecutableName()
}

// BuildDir returns the per-platform build directory.
func (r *BuildRequest) BuildDir() string {
	return BuildDir(r.TargetDir(), r.Executable(), r.Args.Release, r.Platform())
}

// Layout returns the output layout for this request.
func (r *BuildRequest) Layout() Layout {
	return NewLayout(
		r.BuildDir(),
		r.Platform(),
		r.Args.Release,
		r.Config.ResolvedAppName(r.Executable()),
		r.Args.TargetArgs.Arch,
	)
}

// ForServer returns a copy of the request building the server half of a fullstack app.
// The server is always a base build.
func (r *BuildRequest) ForServer() *BuildRequest {
	args := r.Args.Clone()
	args.Platform = PlatformServer
	args.Fullstack = false
	return &BuildRequest{
		ID:         r.ID,
		Args:       args,
		Crate:      r.Crate,
		Config:     r.Config,
		Mode:       BaseMode(),
		LinkerPath: r.LinkerPath,
	}
}
