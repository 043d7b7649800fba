package ports

import "github.com/hullworks/keel/internal/core/domain"

// ConfigLoader defines the interface for loading the application description.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given project root and returns
	// the validated root configuration.
	Load(projectRoot string) (*domain.RootConfig, error)
}
