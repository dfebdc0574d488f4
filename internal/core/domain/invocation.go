package domain

import (
	"strings"
	"time"
)

// InvocationRecord is what a fat build leaves behind for later thin builds.
type InvocationRecord struct {
	Key         string     `json:"key"`
	BuildID     string     `json:"build_id"`
	Platform    Platform   `json:"platform"`
	Executable  string     `json:"executable"`
	DirectRustc [][]string `json:"direct_rustc"`
	RecordedAt  time.Time  `json:"recorded_at"`
}

// InvocationKey identifies the build target an invocation record belongs to.
func InvocationKey(r *BuildRequest) string {
	parts := []string{
		r.Platform().String(),
		ProfileDirName(r.Args.Release),
		r.Crate.Package.Name,
		string(r.Crate.Kind),
		r.Crate.Target.Name,
		string(r.Args.TargetArgs.Arch.OrDefault()),
		r.Args.TargetArgs.Target,
	}
	return strings.Join(parts, "/")
}
