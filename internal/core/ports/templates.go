package ports

import "github.com/hullworks/keel/internal/core/domain"

//go:generate mockgen -source=templates.go -destination=mocks/mock_templates.go -package=mocks

// Templates produces the literal text of every generated file. Producers are
// opaque to the engine; the orchestrator invokes each one subject to the
// per-section feature gates.
type Templates interface {
	// AppDelegate is the platform application delegate source.
	AppDelegate(cfg *domain.EffectiveConfig) string

	// WebViewController is the web view controller source.
	WebViewController(cfg *domain.EffectiveConfig) string

	// Bridge is the native-to-web bridge runtime source.
	Bridge(cfg *domain.EffectiveConfig) string

	// Updater is the over-the-air updater source, produced only when an
	// update channel is configured.
	Updater(cfg *domain.EffectiveConfig) string

	// Registrant is the plugin registrant source for one platform,
	// consuming that platform's aggregated contribution.
	Registrant(cfg *domain.EffectiveConfig, agg domain.AggregatedContribution) string

	// InfoPlistIOS and InfoPlistMacOS are the per-platform property lists.
	InfoPlistIOS(cfg *domain.EffectiveConfig) string
	InfoPlistMacOS(cfg *domain.EffectiveConfig) string

	// LaunchScreen is the launch-screen storyboard, produced only when a
	// splash section is configured for iOS.
	LaunchScreen(cfg *domain.EffectiveConfig) string

	// AssetCatalogContents, AppIconContents, and SplashImageContents are
	// the asset-catalog manifests.
	AssetCatalogContents(cfg *domain.EffectiveConfig) string
	AppIconContents(cfg *domain.EffectiveConfig) string
	SplashImageContents(cfg *domain.EffectiveConfig) string
}
