package project

import (
	"github.com/hullworks/keel/internal/core/domain"
)

// platformSDK maps a built-in platform to its SDK root and the name of its
// minimum-deployment-target build setting.
type platformSDK struct {
	sdkRoot       string
	deploySetting string
	supported     string
	deviceFamily  string
}

var platformSDKs = map[string]platformSDK{
	domain.PlatformIOS: {
		sdkRoot:       "iphoneos",
		deploySetting: "IPHONEOS_DEPLOYMENT_TARGET",
		supported:     "iphoneos iphonesimulator",
		deviceFamily:  "1,2",
	},
	domain.PlatformMacOS: {
		sdkRoot:       "macosx",
		deploySetting: "MACOSX_DEPLOYMENT_TARGET",
		supported:     "macosx",
		deviceFamily:  "",
	},
}

// projectSettings builds the shared project-level build settings for one
// configuration. When exactly one native target exists, the SDK root and
// minimum deployment target live here; with several targets they move to
// each target's own configuration because each target may use a different
// SDK.
func projectSettings(release bool, single *singleTargetSDK) *Dict {
	d := &Dict{}
	d.Set("ALWAYS_SEARCH_USER_PATHS", Str("NO"))
	d.Set("CLANG_ENABLE_MODULES", Str("YES"))
	d.Set("ENABLE_STRICT_OBJC_MSGSEND", Str("YES"))
	if release {
		d.Set("SWIFT_COMPILATION_MODE", Str("wholemodule"))
		d.Set("SWIFT_OPTIMIZATION_LEVEL", Str("-O"))
		d.Set("VALIDATE_PRODUCT", Str("YES"))
	} else {
		d.Set("DEBUG_INFORMATION_FORMAT", Str("dwarf"))
		d.Set("ONLY_ACTIVE_ARCH", Str("YES"))
		d.Set("SWIFT_OPTIMIZATION_LEVEL", Str("-Onone"))
	}
	d.Set("SWIFT_VERSION", Str("5.0"))
	if single != nil {
		d.Set("SDKROOT", Str(single.sdk.sdkRoot))
		d.Set(single.sdk.deploySetting, Str(single.minVersion))
	}
	return d
}

// singleTargetSDK carries the SDK placement data when only one platform
// target is configured.
type singleTargetSDK struct {
	sdk        platformSDK
	minVersion string
}

// targetSettings builds one target's per-configuration build settings.
func targetSettings(platformID string, cfg *domain.EffectiveConfig, entry domain.PlatformEntry, multiTarget bool) *Dict {
	sdk := platformSDKs[platformID]

	d := &Dict{}
	d.Set("ASSETCATALOG_COMPILER_APPICON_NAME", Str("AppIcon"))
	d.Set("CURRENT_PROJECT_VERSION", Str(cfg.App.Build))
	d.Set("GENERATE_INFOPLIST_FILE", Str("NO"))
	d.Set("INFOPLIST_FILE", Str(platformID+"/Info.plist"))
	d.Set("MARKETING_VERSION", Str(cfg.App.Version))
	d.Set("PRODUCT_BUNDLE_IDENTIFIER", Str(cfg.App.Identifier))
	d.Set("PRODUCT_NAME", Str("$(TARGET_NAME)"))
	d.Set("SUPPORTED_PLATFORMS", Str(sdk.supported))

	if multiTarget {
		d.Set("SDKROOT", Str(sdk.sdkRoot))
		if entry.MinVersion != "" {
			d.Set(sdk.deploySetting, Str(entry.MinVersion))
		}
	}

	if sdk.deviceFamily != "" {
		d.Set("TARGETED_DEVICE_FAMILY", Str(sdk.deviceFamily))
	}

	if cfg.Signing != nil {
		if cfg.Signing.Automatic {
			d.Set("CODE_SIGN_STYLE", Str("Automatic"))
		} else {
			d.Set("CODE_SIGN_STYLE", Str("Manual"))
		}
		if cfg.Signing.Identity != "" {
			d.Set("CODE_SIGN_IDENTITY", Str(cfg.Signing.Identity))
		}
		if cfg.Signing.TeamID != "" {
			d.Set("DEVELOPMENT_TEAM", Str(cfg.Signing.TeamID))
		}
		if cfg.Signing.Provisioning != "" {
			d.Set("PROVISIONING_PROFILE_SPECIFIER", Str(cfg.Signing.Provisioning))
		}
	} else {
		d.Set("CODE_SIGN_STYLE", Str("Automatic"))
	}

	return d
}

// assetCopyScript is the single-line shell body of the web-asset copy phase.
// A missing pre-built asset directory is a warning in non-release builds and
// a hard failure in release configuration.
const assetCopyScript = `ASSET_DIR="$SRCROOT/../dist"; if [ ! -d "$ASSET_DIR" ]; then if [ "$CONFIGURATION" = "Release" ]; then echo "error: web assets not found at $ASSET_DIR"; exit 1; else echo "warning: web assets not found at $ASSET_DIR; skipping copy"; fi; else rsync -a --delete "$ASSET_DIR/" "$BUILT_PRODUCTS_DIR/$UNLOCALIZED_RESOURCES_FOLDER_PATH/dist/"; fi`
