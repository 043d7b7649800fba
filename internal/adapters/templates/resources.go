package templates

import (
	"fmt"
	"strings"

	"github.com/hullworks/keel/internal/core/domain"
)

// InfoPlistIOS produces the iOS Info.plist.
func (s *Set) InfoPlistIOS(cfg *domain.EffectiveConfig) string {
	var b strings.Builder
	writePlistHeader(&b)
	writePlistIdentity(&b, cfg)
	b.WriteString("\t<key>LSRequiresIPhoneOS</key>\n\t<true/>\n")
	b.WriteString("\t<key>UIRequiredDeviceCapabilities</key>\n\t<array>\n\t\t<string>arm64</string>\n\t</array>\n")
	if cfg.Splash != nil {
		b.WriteString("\t<key>UILaunchStoryboardName</key>\n\t<string>LaunchScreen</string>\n")
	}
	b.WriteString("\t<key>UISupportedInterfaceOrientations</key>\n\t<array>\n")
	b.WriteString("\t\t<string>UIInterfaceOrientationPortrait</string>\n")
	b.WriteString("\t\t<string>UIInterfaceOrientationLandscapeLeft</string>\n")
	b.WriteString("\t\t<string>UIInterfaceOrientationLandscapeRight</string>\n")
	b.WriteString("\t</array>\n")
	writePlistFooter(&b)
	return b.String()
}

// InfoPlistMacOS produces the macOS Info.plist. Invoked only when the macos
// platform is configured.
func (s *Set) InfoPlistMacOS(cfg *domain.EffectiveConfig) string {
	var b strings.Builder
	writePlistHeader(&b)
	writePlistIdentity(&b, cfg)
	b.WriteString("\t<key>LSMinimumSystemVersion</key>\n")
	fmt.Fprintf(&b, "\t<string>%s</string>\n", plistEscape(minVersionOf(cfg, domain.PlatformMacOS)))
	b.WriteString("\t<key>NSPrincipalClass</key>\n\t<string>NSApplication</string>\n")
	b.WriteString("\t<key>NSHighResolutionCapable</key>\n\t<true/>\n")
	writePlistFooter(&b)
	return b.String()
}

// LaunchScreen produces the launch-screen storyboard. Invoked only when the
// splash section is configured.
func (s *Set) LaunchScreen(cfg *domain.EffectiveConfig) string {
	background := "systemBackgroundColor"
	if cfg.Splash != nil && cfg.Splash.BackgroundColor != "" {
		background = cfg.Splash.BackgroundColor
	}
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<document type="com.apple.InterfaceBuilder3.CocoaTouch.Storyboard.XIB" version="3.0" launchScreen="YES" initialViewController="01J-lp-oVM">` + "\n")
	b.WriteString("    <scenes>\n")
	b.WriteString(`        <scene sceneID="EHf-IW-A2E">` + "\n")
	b.WriteString("            <objects>\n")
	b.WriteString(`                <viewController id="01J-lp-oVM" sceneMemberID="viewController">` + "\n")
	b.WriteString(`                    <view key="view" id="Ze5-6b-2t3">` + "\n")
	fmt.Fprintf(&b, `                        <color key="backgroundColor" cocoaTouchSystemColor=%q/>`+"\n", plistEscape(background))
	b.WriteString("                        <subviews>\n")
	b.WriteString(`                            <imageView image="Splash" id="kzR-Ts-9j7" contentMode="scaleAspectFit"/>` + "\n")
	b.WriteString("                        </subviews>\n")
	b.WriteString("                    </view>\n")
	b.WriteString("                </viewController>\n")
	b.WriteString("            </objects>\n")
	b.WriteString("        </scene>\n")
	b.WriteString("    </scenes>\n")
	b.WriteString("    <resources>\n")
	b.WriteString(`        <image name="Splash"/>` + "\n")
	b.WriteString("    </resources>\n")
	b.WriteString("</document>\n")
	return b.String()
}

// AssetCatalogContents produces the top-level asset catalog manifest.
func (s *Set) AssetCatalogContents(_ *domain.EffectiveConfig) string {
	return assetContentsJSON("")
}

// AppIconContents produces the AppIcon.appiconset manifest. Invoked only
// when the icon section is configured.
func (s *Set) AppIconContents(_ *domain.EffectiveConfig) string {
	return assetContentsJSON(`    {
      "filename" : "AppIcon.png",
      "idiom" : "universal",
      "platform" : "ios",
      "size" : "1024x1024"
    }`)
}

// SplashImageContents produces the Splash.imageset manifest. Invoked only
// when the splash section is configured.
func (s *Set) SplashImageContents(_ *domain.EffectiveConfig) string {
	return assetContentsJSON(`    {
      "filename" : "Splash.png",
      "idiom" : "universal",
      "scale" : "1x"
    }`)
}

func assetContentsJSON(image string) string {
	var b strings.Builder
	b.WriteString("{\n")
	if image != "" {
		b.WriteString("  \"images\" : [\n")
		b.WriteString(image)
		b.WriteString("\n  ],\n")
	}
	b.WriteString("  \"info\" : {\n")
	b.WriteString("    \"author\" : \"keel\",\n")
	b.WriteString("    \"version\" : 1\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")
	return b.String()
}

func writePlistHeader(b *strings.Builder) {
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">` + "\n")
	b.WriteString(`<plist version="1.0">` + "\n<dict>\n")
}

func writePlistFooter(b *strings.Builder) {
	b.WriteString("</dict>\n</plist>\n")
}

func writePlistIdentity(b *strings.Builder, cfg *domain.EffectiveConfig) {
	fmt.Fprintf(b, "\t<key>CFBundleDisplayName</key>\n\t<string>%s</string>\n", plistEscape(cfg.App.Name))
	b.WriteString("\t<key>CFBundleIdentifier</key>\n\t<string>$(PRODUCT_BUNDLE_IDENTIFIER)</string>\n")
	b.WriteString("\t<key>CFBundleExecutable</key>\n\t<string>$(EXECUTABLE_NAME)</string>\n")
	b.WriteString("\t<key>CFBundlePackageType</key>\n\t<string>APPL</string>\n")
	fmt.Fprintf(b, "\t<key>CFBundleShortVersionString</key>\n\t<string>%s</string>\n", plistEscape(cfg.App.Version))
	fmt.Fprintf(b, "\t<key>CFBundleVersion</key>\n\t<string>%s</string>\n", plistEscape(cfg.App.Build))
}

func minVersionOf(cfg *domain.EffectiveConfig, platformID string) string {
	if p := cfg.Platform(platformID); p != nil && p.MinVersion != "" {
		return p.MinVersion
	}
	return "11.0"
}

// plistEscape escapes the XML special characters for plist string bodies.
func plistEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
