package plugins_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/hullworks/keel/internal/core/ports"
	"github.com/hullworks/keel/internal/core/ports/mocks"
	"github.com/hullworks/keel/internal/engine/plugins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func testLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func resolverConfig(plugins ...domain.NativePlugin) *domain.RootConfig {
	return &domain.RootConfig{
		App: domain.AppIdentity{Name: "A", Identifier: "com.a"},
		Platforms: []domain.PlatformEntry{
			{ID: domain.PlatformIOS, MinVersion: "14.0"},
		},
		Plugins: plugins,
	}
}

func touch(t *testing.T, dir string, rel string) string {
	t.Helper()
	full := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte("// stub\n"), 0o600))
	return full
}

func TestResolve_StaticContribution(t *testing.T) {
	projectRoot := t.TempDir()
	src := touch(t, projectRoot, "plugins/camera/ios/Camera.swift")

	root := resolverConfig(domain.NativePlugin{
		Name:    "camera",
		RootDir: "plugins/camera",
		Platforms: map[string]domain.PlatformContribution{
			"ios": {
				Sources:          []string{"ios/Camera.swift"},
				Registrars:       []string{"register_camera"},
				Dependencies:     []domain.FrameworkDependency{{Name: "AVFoundation"}},
				BridgeNamespaces: []string{"camera"},
			},
		},
	})

	res, err := plugins.NewResolver(testLogger(t)).Resolve(context.Background(), root, projectRoot, domain.ModeGenerate)
	require.NoError(t, err)

	agg := res.Aggregated[domain.PlatformIOS]
	assert.Equal(t, []string{src}, agg.Sources)
	assert.Equal(t, []string{"register_camera"}, agg.Registrars)
	require.Len(t, agg.Dependencies, 1)
	assert.Equal(t, domain.DependencyKindFramework, agg.Dependencies[0].Kind)
	assert.Equal(t, []string{"camera"}, agg.BridgeNamespaces)

	require.Len(t, res.Fingerprints, 1)
	assert.Equal(t, "camera", res.Fingerprints[0].Name)
	assert.NotEmpty(t, res.Fingerprints[0].Fingerprint)
}

func TestResolve_DynamicContributionMergesAfterStatic(t *testing.T) {
	projectRoot := t.TempDir()
	a := touch(t, projectRoot, "a.swift")
	b := touch(t, projectRoot, "b.swift")

	root := resolverConfig(domain.NativePlugin{
		Name: "dyn",
		Platforms: map[string]domain.PlatformContribution{
			"ios": {Sources: []string{"b.swift"}},
		},
		Resolver: domain.ContributionResolverFunc(func(_ context.Context, rc domain.ResolveContext) (map[string]domain.PlatformContribution, error) {
			assert.Equal(t, projectRoot, rc.ProjectRoot)
			assert.Equal(t, projectRoot, rc.RootDir)
			assert.Equal(t, domain.ModeDev, rc.Mode)
			return map[string]domain.PlatformContribution{
				"ios": {Sources: []string{"a.swift"}},
			}, nil
		}),
	})

	res, err := plugins.NewResolver(testLogger(t)).Resolve(context.Background(), root, projectRoot, domain.ModeDev)
	require.NoError(t, err)

	// Resolved file lists are sorted by absolute path.
	assert.Equal(t, []string{a, b}, res.Aggregated[domain.PlatformIOS].Sources)
}

func TestResolve_MissingFileFails(t *testing.T) {
	projectRoot := t.TempDir()

	root := resolverConfig(domain.NativePlugin{
		Name: "broken",
		Platforms: map[string]domain.PlatformContribution{
			"ios": {Sources: []string{"gone.swift"}},
		},
	})

	_, err := plugins.NewResolver(testLogger(t)).Resolve(context.Background(), root, projectRoot, domain.ModeGenerate)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPluginFileNotFound)

	var zerrErr *zerr.Error
	require.ErrorAs(t, err, &zerrErr)
	md := zerrErr.Metadata()
	assert.Equal(t, "broken", md["plugin"])
	assert.Equal(t, "gone.swift", md["declared_path"])
}

func TestResolve_InvalidRegistrarFails(t *testing.T) {
	root := resolverConfig(domain.NativePlugin{
		Name: "bad",
		Platforms: map[string]domain.PlatformContribution{
			"ios": {Registrars: []string{"1bad"}},
		},
	})

	_, err := plugins.NewResolver(testLogger(t)).Resolve(context.Background(), root, t.TempDir(), domain.ModeGenerate)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRegistrarSymbol)
}

func TestResolve_InvalidDependencyKindFails(t *testing.T) {
	root := resolverConfig(domain.NativePlugin{
		Name: "bad",
		Platforms: map[string]domain.PlatformContribution{
			"ios": {Dependencies: []domain.FrameworkDependency{{Name: "Thing", Kind: "static-lib"}}},
		},
	})

	_, err := plugins.NewResolver(testLogger(t)).Resolve(context.Background(), root, t.TempDir(), domain.ModeGenerate)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDependencyDeclaration)
}

func TestResolve_UnconfiguredPlatformNeverValidated(t *testing.T) {
	// The macos contribution references a file that does not exist; since
	// macos is not a configured platform the reference is ignored, not
	// validated.
	root := resolverConfig(domain.NativePlugin{
		Name: "camera",
		Platforms: map[string]domain.PlatformContribution{
			"macos": {Sources: []string{"does/not/exist.swift"}},
		},
	})

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any())

	res, err := plugins.NewResolver(log).Resolve(context.Background(), root, t.TempDir(), domain.ModeGenerate)
	require.NoError(t, err)
	assert.Empty(t, res.Aggregated[domain.PlatformIOS].Sources)
}

func TestResolve_FirstWinsAcrossPlugins(t *testing.T) {
	projectRoot := t.TempDir()
	shared := touch(t, projectRoot, "Shared.swift")

	first := domain.NativePlugin{
		Name: "one",
		Platforms: map[string]domain.PlatformContribution{
			"ios": {
				Sources:      []string{"Shared.swift"},
				Registrars:   []string{"register_shared"},
				Dependencies: []domain.FrameworkDependency{{Name: "StoreKit", Weak: true}},
			},
		},
	}
	second := domain.NativePlugin{
		Name: "two",
		Platforms: map[string]domain.PlatformContribution{
			"ios": {
				Sources:      []string{"Shared.swift"},
				Registrars:   []string{"register_shared"},
				Dependencies: []domain.FrameworkDependency{{Name: "StoreKit"}},
			},
		},
	}

	res, err := plugins.NewResolver(testLogger(t)).Resolve(context.Background(), resolverConfig(first, second), projectRoot, domain.ModeGenerate)
	require.NoError(t, err)

	agg := res.Aggregated[domain.PlatformIOS]
	assert.Equal(t, []string{shared}, agg.Sources)
	assert.Equal(t, []string{"register_shared"}, agg.Registrars)
	require.Len(t, agg.Dependencies, 1)
	assert.False(t, agg.Dependencies[0].Weak, "strong declaration from a later plugin clears weak")
}

func TestResolve_UnresolvedCustomPlatformFails(t *testing.T) {
	root := resolverConfig()
	root.Platforms = append(root.Platforms, domain.PlatformEntry{ID: "tv"})

	_, err := plugins.NewResolver(testLogger(t)).Resolve(context.Background(), root, t.TempDir(), domain.ModeGenerate)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnresolvedPlatformPlugin)
}

func TestResolve_CustomPlatformWithProviderSucceeds(t *testing.T) {
	root := resolverConfig()
	root.Platforms = append(root.Platforms, domain.PlatformEntry{ID: "tv"})
	root.PlatformPlugins = []domain.PlatformPlugin{{Name: "keel-tv", Platform: "tv"}}

	_, err := plugins.NewResolver(testLogger(t)).Resolve(context.Background(), root, t.TempDir(), domain.ModeGenerate)
	require.NoError(t, err)
}

func TestResolve_ExplicitFingerprintReplacesContentHash(t *testing.T) {
	projectRoot := t.TempDir()
	touch(t, projectRoot, "a.swift")

	withContent := domain.NativePlugin{
		Name: "p",
		Platforms: map[string]domain.PlatformContribution{
			"ios": {Sources: []string{"a.swift"}},
		},
	}
	withExplicit := withContent
	withExplicit.Fingerprint = "v1"

	resolver := plugins.NewResolver(testLogger(t))

	resA, err := resolver.Resolve(context.Background(), resolverConfig(withContent), projectRoot, domain.ModeGenerate)
	require.NoError(t, err)
	resB, err := resolver.Resolve(context.Background(), resolverConfig(withExplicit), projectRoot, domain.ModeGenerate)
	require.NoError(t, err)

	assert.NotEqual(t, resA.Fingerprints[0].Fingerprint, resB.Fingerprints[0].Fingerprint)

	// The explicit fingerprint is stable regardless of content.
	resC, err := resolver.Resolve(context.Background(), resolverConfig(withExplicit), projectRoot, domain.ModeGenerate)
	require.NoError(t, err)
	assert.Equal(t, resB.Fingerprints[0].Fingerprint, resC.Fingerprints[0].Fingerprint)
}

func TestResolve_Deterministic(t *testing.T) {
	projectRoot := t.TempDir()
	touch(t, projectRoot, "b.swift")
	touch(t, projectRoot, "a.swift")

	root := resolverConfig(domain.NativePlugin{
		Name: "p",
		Platforms: map[string]domain.PlatformContribution{
			"ios": {Sources: []string{"b.swift", "a.swift"}},
		},
	})

	resolver := plugins.NewResolver(testLogger(t))
	resA, err := resolver.Resolve(context.Background(), root, projectRoot, domain.ModeGenerate)
	require.NoError(t, err)
	resB, err := resolver.Resolve(context.Background(), root, projectRoot, domain.ModeGenerate)
	require.NoError(t, err)

	assert.Equal(t, resA.Aggregated, resB.Aggregated)
	assert.Equal(t, resA.Fingerprints, resB.Fingerprints)
}
