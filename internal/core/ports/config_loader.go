package ports

import "go.trai.ch/weld/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers weld.yaml upwards from cwd and returns the resolved configuration.
	// A missing file yields the defaults rooted at cwd.
	Load(cwd string) (*domain.ProjectConfig, error)
}
