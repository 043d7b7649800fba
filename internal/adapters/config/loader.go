// Package config provides the configuration loader for keel.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/hullworks/keel/internal/core/domain"
)

// DefaultFilename is the configuration file keel looks for in the project
// root.
const DefaultFilename = "keel.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a FileConfigLoader for the default filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the configuration from the given project root.
func (l *FileConfigLoader) Load(projectRoot string) (*domain.RootConfig, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	return Load(filepath.Join(projectRoot, name))
}

// Load reads a configuration file from the given path and returns the
// validated root configuration.
func Load(path string) (*domain.RootConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var kf Keelfile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	platforms, err := decodePlatforms(&kf.Platforms)
	if err != nil {
		return nil, err
	}

	root := &domain.RootConfig{
		App: domain.AppIdentity{
			Name:       kf.App.Name,
			Identifier: kf.App.Identifier,
			Version:    kf.App.Version,
			Build:      kf.App.Build,
		},
		Platforms:       platforms,
		PlatformPlugins: kf.PlatformPlugins,
		Plugins:         kf.Plugins,
		Signing:         kf.Signing,
		Updates:         kf.Updates,
		Icon:            kf.Icon,
		Splash:          kf.Splash,
		Chrome:          kf.Chrome,
		Dev:             kf.Dev,
	}

	if err := validate(root); err != nil {
		return nil, err
	}

	return root, nil
}

// decodePlatforms walks the raw platforms mapping node in document order.
func decodePlatforms(node *yaml.Node) ([]domain.PlatformEntry, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.New("platforms must be a mapping of platform id to settings")
	}

	entries := make([]domain.PlatformEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		val := node.Content[i+1]

		var dto platformDTO
		if val.Tag != "!!null" {
			if err := val.Decode(&dto); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to parse platform entry"), "platform", key.Value)
			}
		}

		entries = append(entries, domain.PlatformEntry{
			ID:         key.Value,
			MinVersion: dto.MinVersion,
			Override:   dto.Override,
		})
	}
	return entries, nil
}

func validate(root *domain.RootConfig) error {
	if root.App.Name == "" {
		return zerr.New("app.name is required")
	}
	if root.App.Identifier == "" {
		return zerr.New("app.identifier is required")
	}
	if len(root.Platforms) == 0 {
		return zerr.New("at least one platform must be configured")
	}

	seen := make(map[string]bool, len(root.Platforms))
	for _, p := range root.Platforms {
		if seen[p.ID] {
			return zerr.With(zerr.New("platform configured twice"), "platform", p.ID)
		}
		seen[p.ID] = true
	}

	for i, p := range root.Plugins {
		if p.Name == "" {
			return zerr.With(zerr.New("plugin name is required"), "plugin_index", i)
		}
	}

	return nil
}
