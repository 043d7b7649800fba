package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hullworks/keel/internal/adapters/config"
	"github.com/hullworks/keel/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKeelfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(content), 0o600))
	return dir
}

func TestLoad_Success(t *testing.T) {
	dir := writeKeelfile(t, `
app:
  name: Keelhaul
  identifier: com.hullworks.keelhaul
  version: 1.2.0
  build: "5"
platforms:
  ios:
    minVersion: "14.0"
  macos:
    minVersion: "12.0"
signing:
  teamId: ABCDE12345
  automatic: true
chrome:
  title: Keelhaul
  width: 1280
  height: 800
`)

	root, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Keelhaul", root.App.Name)
	assert.Equal(t, "com.hullworks.keelhaul", root.App.Identifier)
	assert.Equal(t, "1.2.0", root.App.Version)
	assert.Equal(t, "5", root.App.Build)

	require.Len(t, root.Platforms, 2)
	assert.Equal(t, "ios", root.Platforms[0].ID)
	assert.Equal(t, "14.0", root.Platforms[0].MinVersion)
	assert.Equal(t, "macos", root.Platforms[1].ID)

	require.NotNil(t, root.Signing)
	assert.Equal(t, "ABCDE12345", root.Signing.TeamID)
	assert.True(t, root.Signing.Automatic)

	require.NotNil(t, root.Chrome)
	assert.Equal(t, 1280, root.Chrome.Width)

	assert.Nil(t, root.Updates)
	assert.Nil(t, root.Splash)
}

func TestLoad_PlatformDeclarationOrderPreserved(t *testing.T) {
	dir := writeKeelfile(t, `
app:
  name: A
  identifier: com.a
platforms:
  macos:
  ios:
`)

	root, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	require.Len(t, root.Platforms, 2)
	assert.Equal(t, "macos", root.Platforms[0].ID)
	assert.Equal(t, "ios", root.Platforms[1].ID)
}

func TestLoad_PlatformOverrideSections(t *testing.T) {
	dir := writeKeelfile(t, `
app:
  name: A
  identifier: com.a
signing:
  teamId: ROOT
platforms:
  ios:
    minVersion: "15.0"
    override:
      app:
        name: A Mobile
      signing:
        teamId: IOS
  macos:
    override:
      signing: null
`)

	root, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	ios := domain.ResolveForPlatform(root, "ios")
	require.NotNil(t, ios.Signing)
	assert.Equal(t, "IOS", ios.Signing.TeamID)
	assert.Equal(t, "A Mobile", ios.App.Name)

	mac := domain.ResolveForPlatform(root, "macos")
	assert.Nil(t, mac.Signing, "explicit null clears the inherited section")
}

func TestLoad_PluginDeclarations(t *testing.T) {
	dir := writeKeelfile(t, `
app:
  name: A
  identifier: com.a
platforms:
  ios:
plugins:
  - name: camera
    rootDir: plugins/camera
    platforms:
      ios:
        sources: [ios/Camera.swift]
        registrars: [register_camera]
        dependencies:
          - AVFoundation
          - {name: CoreNFC, kind: framework, weak: true}
`)

	root, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	require.Len(t, root.Plugins, 1)
	plugin := root.Plugins[0]
	assert.Equal(t, "camera", plugin.Name)
	assert.Equal(t, "plugins/camera", plugin.RootDir)

	ios := plugin.Platforms["ios"]
	assert.Equal(t, []string{"ios/Camera.swift"}, ios.Sources)
	assert.Equal(t, []string{"register_camera"}, ios.Registrars)
	require.Len(t, ios.Dependencies, 2)
	assert.Equal(t, domain.FrameworkDependency{Name: "AVFoundation", Kind: "framework"}, ios.Dependencies[0])
	assert.True(t, ios.Dependencies[1].Weak)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeKeelfile(t, "app: [unclosed")
	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing app name",
			content: "app:\n  identifier: com.a\nplatforms:\n  ios:\n",
		},
		{
			name:    "missing identifier",
			content: "app:\n  name: A\nplatforms:\n  ios:\n",
		},
		{
			name:    "no platforms",
			content: "app:\n  name: A\n  identifier: com.a\n",
		},
		{
			name:    "unnamed plugin",
			content: "app:\n  name: A\n  identifier: com.a\nplatforms:\n  ios:\nplugins:\n  - rootDir: p\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeKeelfile(t, tt.content)
			_, err := config.NewLoader().Load(dir)
			require.Error(t, err)
		})
	}
}
