package domain_test

import (
	"testing"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func overrideRoot() *domain.RootConfig {
	return &domain.RootConfig{
		App: domain.AppIdentity{
			Name:       "Keelhaul",
			Identifier: "com.hullworks.keelhaul",
			Version:    "2.0.0",
			Build:      "20",
		},
		Platforms: []domain.PlatformEntry{
			{ID: domain.PlatformIOS, MinVersion: "14.0"},
			{ID: domain.PlatformMacOS, MinVersion: "12.0"},
		},
		Signing: &domain.SigningConfig{TeamID: "ROOTTEAM", Automatic: true},
		Chrome:  &domain.ChromeConfig{Title: "Keelhaul", Width: 800, Height: 600},
	}
}

func TestResolveForPlatform_NoOverrideReturnsRoot(t *testing.T) {
	root := overrideRoot()

	eff := domain.ResolveForPlatform(root, domain.PlatformIOS)

	assert.Same(t, root, eff)
}

func TestResolveForPlatform_UnconfiguredPlatformReturnsRoot(t *testing.T) {
	root := overrideRoot()

	eff := domain.ResolveForPlatform(root, "windows")

	assert.Same(t, root, eff)
}

func TestResolveForPlatform_IdentityShallowMerge(t *testing.T) {
	root := overrideRoot()
	root.Platforms[0].Override = &domain.PlatformOverride{
		App: domain.AppOverride{
			Name:       strptr("Keelhaul Mobile"),
			Identifier: strptr("com.hullworks.keelhaul.ios"),
		},
	}

	eff := domain.ResolveForPlatform(root, domain.PlatformIOS)

	assert.Equal(t, "Keelhaul Mobile", eff.App.Name)
	assert.Equal(t, "com.hullworks.keelhaul.ios", eff.App.Identifier)
	// Unset identity fields inherit.
	assert.Equal(t, "2.0.0", eff.App.Version)
	assert.Equal(t, "20", eff.App.Build)
	// The root config is never mutated.
	assert.Equal(t, "Keelhaul", root.App.Name)
}

func TestResolveForPlatform_SectionReplaceIsWholesale(t *testing.T) {
	root := overrideRoot()
	root.Platforms[0].Override = &domain.PlatformOverride{
		Signing: domain.SetSection(&domain.SigningConfig{TeamID: "IOSTEAM"}),
	}

	eff := domain.ResolveForPlatform(root, domain.PlatformIOS)

	require.NotNil(t, eff.Signing)
	assert.Equal(t, "IOSTEAM", eff.Signing.TeamID)
	// Replace, not merge: the root's Automatic flag does not leak through.
	assert.False(t, eff.Signing.Automatic)
}

func TestResolveForPlatform_ExplicitNullClearsSection(t *testing.T) {
	root := overrideRoot()
	root.Platforms[0].Override = &domain.PlatformOverride{
		Signing: domain.SetSection[domain.SigningConfig](nil),
	}

	eff := domain.ResolveForPlatform(root, domain.PlatformIOS)

	assert.Nil(t, eff.Signing)
	assert.NotNil(t, root.Signing)
}

func TestResolveForPlatform_AbsentSectionInherits(t *testing.T) {
	root := overrideRoot()
	root.Platforms[0].Override = &domain.PlatformOverride{
		App: domain.AppOverride{Name: strptr("Keelhaul Mobile")},
	}

	eff := domain.ResolveForPlatform(root, domain.PlatformIOS)

	assert.Same(t, root.Signing, eff.Signing)
	assert.Same(t, root.Chrome, eff.Chrome)
}

func TestResolveForPlatform_PluginListReplace(t *testing.T) {
	root := overrideRoot()
	root.Plugins = []domain.NativePlugin{{Name: "camera"}, {Name: "nfc"}}
	root.Platforms[1].Override = &domain.PlatformOverride{
		Plugins: domain.SetSection(&[]domain.NativePlugin{{Name: "camera"}}),
	}

	eff := domain.ResolveForPlatform(root, domain.PlatformMacOS)

	require.Len(t, eff.Plugins, 1)
	assert.Equal(t, "camera", eff.Plugins[0].Name)
	assert.Len(t, root.Plugins, 2)
}

func TestResolveForPlatform_PlatformListAlwaysFromRoot(t *testing.T) {
	root := overrideRoot()
	root.Platforms[0].Override = &domain.PlatformOverride{
		App: domain.AppOverride{Name: strptr("renamed")},
	}

	eff := domain.ResolveForPlatform(root, domain.PlatformIOS)

	assert.Equal(t, root.Platforms, eff.Platforms)
}
