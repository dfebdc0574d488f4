package command

import "go.trai.ch/weld/internal/core/domain"

// TargetFeatures returns the explicit features plus the server-only or client-only
// features for the request's platform.
func TargetFeatures(req *domain.BuildRequest) []string {
	ta := req.Args.TargetArgs
	features := append([]string(nil), ta.Features...)
	if req.Platform() == domain.PlatformServer {
		features = append(features, ta.ServerFeatures...)
	} else {
		features = append(features, ta.ClientFeatures...)
	}
	return features
}

// AllFeatures returns TargetFeatures plus the package's default features unless they are
// disabled, de-duplicated in first-seen order.
func AllFeatures(req *domain.BuildRequest) []string {
	features := TargetFeatures(req)
	if !req.Args.TargetArgs.NoDefaultFeatures && req.Crate != nil && req.Crate.Package != nil {
		features = append(features, req.Crate.Package.DefaultFeatures()...)
	}
	return Dedup(features)
}

// Dedup removes repeated entries, keeping the first occurrence of each.
func Dedup(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
