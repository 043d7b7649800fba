package config

import (
	"gopkg.in/yaml.v3"

	"github.com/hullworks/keel/internal/core/domain"
)

// Keelfile represents the structure of the keel.yaml configuration file.
type Keelfile struct {
	App appDTO `yaml:"app"`

	// Platforms is kept as a raw node so configured platforms retain their
	// declaration order; yaml maps into Go maps would lose it.
	Platforms yaml.Node `yaml:"platforms"`

	PlatformPlugins []domain.PlatformPlugin `yaml:"platformPlugins"`
	Plugins         []domain.NativePlugin   `yaml:"plugins"`

	Signing *domain.SigningConfig `yaml:"signing"`
	Updates *domain.UpdateConfig  `yaml:"updates"`
	Icon    *domain.IconConfig    `yaml:"icon"`
	Splash  *domain.SplashConfig  `yaml:"splash"`
	Chrome  *domain.ChromeConfig  `yaml:"chrome"`
	Dev     *domain.DevConfig     `yaml:"dev"`
}

// appDTO represents the identity section of keel.yaml.
type appDTO struct {
	Name       string `yaml:"name"`
	Identifier string `yaml:"identifier"`
	Version    string `yaml:"version"`
	Build      string `yaml:"build"`
}

// platformDTO represents one configured platform entry.
type platformDTO struct {
	MinVersion string                   `yaml:"minVersion"`
	Override   *domain.PlatformOverride `yaml:"override"`
}
