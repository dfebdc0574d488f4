package ports

import "go.trai.ch/weld/internal/core/domain"

// Reporter receives progress and diagnostics while a build runs.
// Implementations must be safe for concurrent use: app and server builds report in parallel.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnBuildStart is called once the toolchain command is assembled.
	// total is the estimated number of compilation units.
	OnBuildStart(platform domain.Platform, total int)

	// OnBuildProgress is called for every finished compilation unit.
	OnBuildProgress(platform domain.Platform, done, total int, unit string)

	// OnBuildMessage forwards a plain toolchain output line.
	OnBuildMessage(platform domain.Platform, line string)

	// OnBuildError forwards a toolchain output line after an error was seen.
	OnBuildError(platform domain.Platform, line string)

	// OnDiagnostic forwards a compiler diagnostic.
	OnDiagnostic(platform domain.Platform, diag domain.Diagnostic)

	// OnBuildComplete is called when the build ends. Exactly one of artifacts and err is set.
	OnBuildComplete(platform domain.Platform, artifacts *domain.BuildArtifacts, err error)
}
