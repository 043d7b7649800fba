package templates_test

import (
	"strings"
	"testing"

	"github.com/hullworks/keel/internal/adapters/templates"
	"github.com/hullworks/keel/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func templateConfig() *domain.EffectiveConfig {
	return &domain.EffectiveConfig{
		App: domain.AppIdentity{
			Name:       "Keelhaul",
			Identifier: "com.hullworks.keelhaul",
			Version:    "1.4.0",
			Build:      "42",
		},
		Platforms: []domain.PlatformEntry{
			{ID: domain.PlatformIOS, MinVersion: "14.0"},
		},
	}
}

func TestAppDelegate_ChromeDefaults(t *testing.T) {
	out := templates.NewSet().AppDelegate(templateConfig())

	assert.Contains(t, out, `MainWindowController(title: "Keelhaul", width: 1024, height: 768)`)
	assert.Contains(t, out, "#if os(iOS)")
}

func TestAppDelegate_ChromeConfigured(t *testing.T) {
	cfg := templateConfig()
	cfg.Chrome = &domain.ChromeConfig{Title: "Hull Works", Width: 1440, Height: 900}

	out := templates.NewSet().AppDelegate(cfg)

	assert.Contains(t, out, `MainWindowController(title: "Hull Works", width: 1440, height: 900)`)
}

func TestWebViewController_DevServer(t *testing.T) {
	cfg := templateConfig()
	without := templates.NewSet().WebViewController(cfg)
	assert.Contains(t, without, "let devServerURL: String? = nil")

	cfg.Dev = &domain.DevConfig{ServerURL: "http://localhost:5173"}
	with := templates.NewSet().WebViewController(cfg)
	assert.Contains(t, with, `let devServerURL: String? = "http://localhost:5173"`)
}

func TestUpdater_EmbedsUpdateConfig(t *testing.T) {
	cfg := templateConfig()
	cfg.Updates = &domain.UpdateConfig{
		Endpoint:  "https://updates.example.com/check",
		Channel:   "stable",
		PublicKey: "pk_123",
	}

	out := templates.NewSet().Updater(cfg)

	assert.Contains(t, out, `static let endpoint = "https://updates.example.com/check"`)
	assert.Contains(t, out, `static let channel = "stable"`)
	assert.Contains(t, out, `static let currentVersion = "1.4.0"`)
}

func TestRegistrant_DeclaresAndInvokesSymbols(t *testing.T) {
	agg := domain.AggregatedContribution{
		Registrars:       []string{"register_camera", "register_nfc"},
		BridgeNamespaces: []string{"camera", "nfc"},
	}

	out := templates.NewSet().Registrant(templateConfig(), agg)

	assert.Contains(t, out, "@_silgen_name(\"register_camera\")\nfunc register_camera()")
	assert.Contains(t, out, "@_silgen_name(\"register_nfc\")\nfunc register_nfc()")
	// Invocation order follows aggregation order.
	assert.Less(t,
		strings.Index(out, "        register_camera()"),
		strings.Index(out, "        register_nfc()"))
	assert.Contains(t, out, `"camera",`)
	assert.Contains(t, out, `"nfc",`)
}

func TestRegistrant_EmptyAggregation(t *testing.T) {
	out := templates.NewSet().Registrant(templateConfig(), domain.AggregatedContribution{})

	assert.Contains(t, out, "static let namespaces: Set<String> = []")
	assert.NotContains(t, out, "@_silgen_name")
}

func TestInfoPlistIOS_Identity(t *testing.T) {
	out := templates.NewSet().InfoPlistIOS(templateConfig())

	assert.Contains(t, out, "<string>Keelhaul</string>")
	assert.Contains(t, out, "<string>$(PRODUCT_BUNDLE_IDENTIFIER)</string>")
	assert.Contains(t, out, "<string>1.4.0</string>")
	assert.Contains(t, out, "<string>42</string>")
	// The launch storyboard key appears only when splash is configured.
	assert.NotContains(t, out, "UILaunchStoryboardName")
}

func TestInfoPlistIOS_LaunchStoryboardWhenSplash(t *testing.T) {
	cfg := templateConfig()
	cfg.Splash = &domain.SplashConfig{}

	out := templates.NewSet().InfoPlistIOS(cfg)

	assert.Contains(t, out, "UILaunchStoryboardName")
}

func TestInfoPlistMacOS_MinimumSystemVersion(t *testing.T) {
	cfg := templateConfig()
	cfg.Platforms = append(cfg.Platforms, domain.PlatformEntry{ID: domain.PlatformMacOS, MinVersion: "12.0"})

	out := templates.NewSet().InfoPlistMacOS(cfg)

	assert.Contains(t, out, "LSMinimumSystemVersion")
	assert.Contains(t, out, "<string>12.0</string>")
}

func TestInfoPlist_EscapesXML(t *testing.T) {
	cfg := templateConfig()
	cfg.App.Name = "Fish & Chips <LLC>"

	out := templates.NewSet().InfoPlistIOS(cfg)

	assert.Contains(t, out, "Fish &amp; Chips &lt;LLC&gt;")
	assert.NotContains(t, out, "<string>Fish & Chips")
}

func TestLaunchScreen_BackgroundColor(t *testing.T) {
	cfg := templateConfig()
	cfg.Splash = &domain.SplashConfig{BackgroundColor: "#112233"}

	out := templates.NewSet().LaunchScreen(cfg)

	assert.Contains(t, out, "<?xml")
	assert.Contains(t, out, `cocoaTouchSystemColor="#112233"`)
}
