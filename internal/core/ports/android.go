package ports

import "go.trai.ch/weld/internal/core/domain"

// AndroidToolchain locates the Android NDK for android builds.
//
//go:generate go run go.uber.org/mock/mockgen -source=android.go -destination=mocks/mock_android_toolchain.go -package=mocks
type AndroidToolchain interface {
	// Locate returns the NDK, or domain.ErrAndroidNDKNotFound.
	Locate() (*domain.AndroidNDK, error)
}

// Scaffolder creates the platform project skeleton inside a build layout.
type Scaffolder interface {
	Scaffold(layout domain.Layout) error
}
