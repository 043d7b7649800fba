package project

import (
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"

	"github.com/hullworks/keel/internal/core/domain"
)

// Relative paths of the fixed generated files inside the project tree. The
// synthesizer and the orchestrator agree on these.
const (
	DescriptorPath   = "App.xcodeproj/project.pbxproj"
	AppDelegatePath  = "Sources/App/AppDelegate.swift"
	WebViewCtrlPath  = "Sources/App/WebViewController.swift"
	BridgePath       = "Sources/App/Bridge.swift"
	UpdaterPath      = "Sources/App/Updater.swift"
	AssetCatalogPath = "Resources/Assets.xcassets"
	LaunchScreenPath = "Resources/LaunchScreen.storyboard"
)

// RegistrantPath returns the per-platform plugin registrant source path.
func RegistrantPath(platformID string) string {
	return "Sources/App/PluginRegistrant." + platformID + ".swift"
}

// InfoPlistPath returns the per-platform Info.plist path.
func InfoPlistPath(platformID string) string {
	return platformID + "/Info.plist"
}

// Synthesizer deterministically assigns identifiers to every generated
// object and emits the project descriptor text. It holds no state between
// invocations: the identifier caches live on the invocation, so repeated
// syntheses in one process cannot leak state between unrelated
// configurations.
type Synthesizer struct{}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// synthesis is the per-invocation working state.
type synthesis struct {
	graph Graph

	// Identifier caches keyed by absolute path / framework name, owned by
	// this invocation.
	pluginFileRefs    map[string]string
	frameworkFileRefs map[string]string

	// productNames records each target's product name, keyed by platform,
	// for the products group. App name overrides can differ per platform.
	productNames map[string]string
}

// Synthesize emits the descriptor text for the configured platforms. The
// effective configuration and aggregated contribution maps are keyed by
// platform identifier; only built-in platforms become native targets.
func (s *Synthesizer) Synthesize(root *domain.RootConfig, effective map[string]*domain.EffectiveConfig, aggregated map[string]domain.AggregatedContribution) (string, error) {
	syn := &synthesis{
		pluginFileRefs:    make(map[string]string),
		frameworkFileRefs: make(map[string]string),
		productNames:      make(map[string]string),
	}

	targets := nativeTargets(root)
	if len(targets) == 0 {
		return "", zerr.New("no built-in platform target configured")
	}
	multiTarget := len(targets) > 1

	var single *singleTargetSDK
	if !multiTarget {
		entry := *root.Platform(targets[0])
		single = &singleTargetSDK{sdk: platformSDKs[targets[0]], minVersion: entry.MinVersion}
	}

	// Shared fixed objects.
	syn.addSharedFileRefs(root, effective)

	targetRefs := make([]Value, 0, len(targets))
	for _, platformID := range targets {
		cfg := effective[platformID]
		if cfg == nil {
			return "", zerr.With(zerr.New("missing effective config for platform"), "platform", platformID)
		}
		agg := aggregated[platformID]
		entry := *root.Platform(platformID)

		ref, err := syn.addTarget(platformID, cfg, entry, agg, multiTarget)
		if err != nil {
			return "", err
		}
		targetRefs = append(targetRefs, ref)
	}

	syn.addProjectObjects(root, targetRefs, single)

	return syn.graph.Serialize(), nil
}

// nativeTargets returns the configured platforms that map to native build
// targets, in configuration order.
func nativeTargets(root *domain.RootConfig) []string {
	out := make([]string, 0, len(root.Platforms))
	for _, p := range root.Platforms {
		if _, ok := staticTargetIDs[p.ID]; ok {
			out = append(out, p.ID)
		}
	}
	return out
}

// addSharedFileRefs emits the file references shared across targets: the
// fixed sources, the asset catalog, and the always-linked host web view
// framework.
func (syn *synthesis) addSharedFileRefs(root *domain.RootConfig, effective map[string]*domain.EffectiveConfig) {
	addSourceRef := func(id, path string) {
		syn.graph.Add(id, filepath.Base(path), "PBXFileReference").
			Set("lastKnownFileType", Str("sourcecode.swift")).
			Set("path", Str(path)).
			Set("sourceTree", Str("<group>"))
	}

	addSourceRef(idAppDelegateRef, AppDelegatePath)
	addSourceRef(idWebViewCtrlRef, WebViewCtrlPath)
	addSourceRef(idBridgeRef, BridgePath)

	if anySection(root, effective, func(c *domain.EffectiveConfig) bool { return c.Updates != nil }) {
		addSourceRef(idUpdaterRef, UpdaterPath)
	}

	syn.graph.Add(idAssetsRef, "Assets.xcassets", "PBXFileReference").
		Set("lastKnownFileType", Str("folder.assetcatalog")).
		Set("path", Str(AssetCatalogPath)).
		Set("sourceTree", Str("<group>"))

	if anySection(root, effective, func(c *domain.EffectiveConfig) bool { return c.Splash != nil }) {
		syn.graph.Add(idLaunchScreenRef, "LaunchScreen.storyboard", "PBXFileReference").
			Set("lastKnownFileType", Str("file.storyboard")).
			Set("path", Str(LaunchScreenPath)).
			Set("sourceTree", Str("<group>"))
	}

	// The host windowing/rendering framework is always linked.
	syn.graph.Add(idWebKitFileRef, "WebKit.framework", "PBXFileReference").
		Set("lastKnownFileType", Str("wrapper.framework")).
		Set("name", Str("WebKit.framework")).
		Set("path", Str("System/Library/Frameworks/WebKit.framework")).
		Set("sourceTree", Str("SDKROOT"))
}

// anySection reports whether the predicate holds for any native target's
// effective configuration.
func anySection(root *domain.RootConfig, effective map[string]*domain.EffectiveConfig, pred func(*domain.EffectiveConfig) bool) bool {
	for _, id := range nativeTargets(root) {
		if cfg := effective[id]; cfg != nil && pred(cfg) {
			return true
		}
	}
	return false
}

// addTarget emits one platform's native target and everything it owns.
func (syn *synthesis) addTarget(platformID string, cfg *domain.EffectiveConfig, entry domain.PlatformEntry, agg domain.AggregatedContribution, multiTarget bool) (Ref, error) {
	ids := staticTargetIDs[platformID]
	targetName := targetName(platformID)
	productName := cfg.App.Name + ".app"
	syn.productNames[platformID] = productName

	// Product reference.
	syn.graph.Add(ids.product, productName, "PBXFileReference").
		Set("explicitFileType", Str("wrapper.application")).
		Set("includeInIndex", Str("0")).
		Set("path", Str(productName)).
		Set("sourceTree", Str("BUILT_PRODUCTS_DIR"))

	// Per-target registrant source and Info.plist references.
	syn.graph.Add(ids.registrantRef, filepath.Base(RegistrantPath(platformID)), "PBXFileReference").
		Set("lastKnownFileType", Str("sourcecode.swift")).
		Set("path", Str(RegistrantPath(platformID))).
		Set("sourceTree", Str("<group>"))
	syn.graph.Add(ids.infoPlistRef, platformID+"/Info.plist", "PBXFileReference").
		Set("lastKnownFileType", Str("text.plist.xml")).
		Set("path", Str(InfoPlistPath(platformID))).
		Set("sourceTree", Str("<group>"))

	sourceBuildRefs := syn.addSourceBuildFiles(platformID, ids, cfg, agg)
	frameworkBuildRefs := syn.addFrameworkBuildFiles(platformID, ids, agg)
	resourceBuildRefs := syn.addResourceBuildFiles(platformID, ids, cfg, agg)

	syn.graph.Add(ids.sourcesPhase, "Sources", "PBXSourcesBuildPhase").
		Set("buildActionMask", Str("2147483647")).
		Set("files", List(sourceBuildRefs)).
		Set("runOnlyForDeploymentPostprocessing", Str("0"))

	syn.graph.Add(ids.frameworksPhase, "Frameworks", "PBXFrameworksBuildPhase").
		Set("buildActionMask", Str("2147483647")).
		Set("files", List(frameworkBuildRefs)).
		Set("runOnlyForDeploymentPostprocessing", Str("0"))

	syn.graph.Add(ids.resourcesPhase, "Resources", "PBXResourcesBuildPhase").
		Set("buildActionMask", Str("2147483647")).
		Set("files", List(resourceBuildRefs)).
		Set("runOnlyForDeploymentPostprocessing", Str("0"))

	syn.graph.Add(ids.scriptPhase, "Copy Web Assets", "PBXShellScriptBuildPhase").
		Set("buildActionMask", Str("2147483647")).
		Set("files", List{}).
		Set("inputPaths", List{}).
		Set("name", Str("Copy Web Assets")).
		Set("outputPaths", List{}).
		Set("runOnlyForDeploymentPostprocessing", Str("0")).
		Set("shellPath", Str("/bin/sh")).
		Set("shellScript", Str(assetCopyScript))

	// Per-target configurations.
	debug := targetSettings(platformID, cfg, entry, multiTarget)
	release := targetSettings(platformID, cfg, entry, multiTarget)
	syn.graph.Add(ids.debugConfig, "Debug", "XCBuildConfiguration").
		Set("buildSettings", debug).
		Set("name", Str("Debug"))
	syn.graph.Add(ids.releaseConfig, "Release", "XCBuildConfiguration").
		Set("buildSettings", release).
		Set("name", Str("Release"))
	syn.graph.Add(ids.configList, "Build configuration list for PBXNativeTarget \""+targetName+"\"", "XCConfigurationList").
		Set("buildConfigurations", List{
			Ref{ids.debugConfig, "Debug"},
			Ref{ids.releaseConfig, "Release"},
		}).
		Set("defaultConfigurationIsVisible", Str("0")).
		Set("defaultConfigurationName", Str("Release"))

	syn.graph.Add(ids.target, targetName, "PBXNativeTarget").
		Set("buildConfigurationList", Ref{ids.configList, "Build configuration list for PBXNativeTarget \"" + targetName + "\""}).
		Set("buildPhases", List{
			Ref{ids.sourcesPhase, "Sources"},
			Ref{ids.frameworksPhase, "Frameworks"},
			Ref{ids.resourcesPhase, "Resources"},
			Ref{ids.scriptPhase, "Copy Web Assets"},
		}).
		Set("buildRules", List{}).
		Set("dependencies", List{}).
		Set("name", Str(targetName)).
		Set("productName", Str(cfg.App.Name)).
		Set("productReference", Ref{ids.product, productName}).
		Set("productType", Str("com.apple.product-type.application"))

	return Ref{ids.target, targetName}, nil
}

// addSourceBuildFiles emits the build-file associations of the target's
// compile phase: the fixed sources, the gated updater source, and every
// plugin-contributed source file.
func (syn *synthesis) addSourceBuildFiles(platformID string, ids targetIDs, cfg *domain.EffectiveConfig, agg domain.AggregatedContribution) []Value {
	refs := make([]Value, 0, 8+len(agg.Sources))

	add := func(buildID, fileRefID, name string) {
		syn.graph.Add(buildID, name+" in Sources", "PBXBuildFile").
			Set("fileRef", Ref{fileRefID, name})
		refs = append(refs, Ref{buildID, name + " in Sources"})
	}

	add(ids.appDelegateBuild, idAppDelegateRef, "AppDelegate.swift")
	add(ids.webViewCtrlBuild, idWebViewCtrlRef, "WebViewController.swift")
	add(ids.bridgeBuild, idBridgeRef, "Bridge.swift")
	add(ids.registrantBuild, ids.registrantRef, filepath.Base(RegistrantPath(platformID)))

	// The OTA-updater source is included only when the updates section is
	// present in this target's effective configuration.
	if cfg.Updates != nil {
		add(ids.updaterBuild, idUpdaterRef, "Updater.swift")
	}

	for _, abs := range agg.Sources {
		fileRefID := syn.pluginFileRef(abs)
		name := filepath.Base(abs)
		buildID := domain.ObjectID(domain.SeedPluginBuildFile(platformID, abs))
		syn.graph.Add(buildID, name+" in Sources", "PBXBuildFile").
			Set("fileRef", Ref{fileRefID, name})
		refs = append(refs, Ref{buildID, name + " in Sources"})
	}

	return refs
}

// addFrameworkBuildFiles emits the link-phase associations: the always-on
// host web view framework plus every plugin-declared framework. The weak
// flag attaches to the build file, not the shared file reference, because
// one target may link a framework weakly while another links it strongly.
func (syn *synthesis) addFrameworkBuildFiles(platformID string, ids targetIDs, agg domain.AggregatedContribution) []Value {
	refs := make([]Value, 0, 1+len(agg.Dependencies))

	syn.graph.Add(ids.webKitBuild, "WebKit.framework in Frameworks", "PBXBuildFile").
		Set("fileRef", Ref{idWebKitFileRef, "WebKit.framework"})
	refs = append(refs, Ref{ids.webKitBuild, "WebKit.framework in Frameworks"})

	deps := append([]domain.FrameworkDependency{}, agg.Dependencies...)
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })

	for _, dep := range deps {
		if dep.Name == "WebKit" {
			continue
		}
		name := dep.Name + ".framework"
		fileRefID := syn.frameworkFileRef(dep.Name)
		buildID := domain.ObjectID(domain.SeedFrameworkBuildFile(platformID, dep.Name))

		o := syn.graph.Add(buildID, name+" in Frameworks", "PBXBuildFile").
			Set("fileRef", Ref{fileRefID, name})
		if dep.Weak {
			settings := &Dict{}
			settings.Set("ATTRIBUTES", List{Str("Weak")})
			o.Set("settings", settings)
		}
		refs = append(refs, Ref{buildID, name + " in Frameworks"})
	}

	return refs
}

// addResourceBuildFiles emits the copy-resources associations: the asset
// catalog, the gated launch screen, and plugin-contributed resources.
func (syn *synthesis) addResourceBuildFiles(platformID string, ids targetIDs, cfg *domain.EffectiveConfig, agg domain.AggregatedContribution) []Value {
	refs := make([]Value, 0, 2+len(agg.Resources))

	syn.graph.Add(ids.assetsBuild, "Assets.xcassets in Resources", "PBXBuildFile").
		Set("fileRef", Ref{idAssetsRef, "Assets.xcassets"})
	refs = append(refs, Ref{ids.assetsBuild, "Assets.xcassets in Resources"})

	// The launch screen ships only when the splash section is configured,
	// and only on iOS.
	if cfg.Splash != nil && platformID == domain.PlatformIOS {
		syn.graph.Add(ids.launchScreenBuild, "LaunchScreen.storyboard in Resources", "PBXBuildFile").
			Set("fileRef", Ref{idLaunchScreenRef, "LaunchScreen.storyboard"})
		refs = append(refs, Ref{ids.launchScreenBuild, "LaunchScreen.storyboard in Resources"})
	}

	for _, abs := range agg.Resources {
		fileRefID := syn.pluginFileRef(abs)
		name := filepath.Base(abs)
		buildID := domain.ObjectID(domain.SeedPluginBuildFile(platformID, abs))
		syn.graph.Add(buildID, name+" in Resources", "PBXBuildFile").
			Set("fileRef", Ref{fileRefID, name})
		refs = append(refs, Ref{buildID, name + " in Resources"})
	}

	return refs
}

// pluginFileRef returns the content-addressed file reference for a
// plugin-declared file, emitting it on first use. The cache is owned by the
// invocation.
func (syn *synthesis) pluginFileRef(absPath string) string {
	if id, ok := syn.pluginFileRefs[absPath]; ok {
		return id
	}
	id := domain.ObjectID(domain.SeedPluginFile(absPath))
	syn.pluginFileRefs[absPath] = id

	syn.graph.Add(id, filepath.Base(absPath), "PBXFileReference").
		Set("lastKnownFileType", Str(fileTypeOf(absPath))).
		Set("name", Str(filepath.Base(absPath))).
		Set("path", Str(absPath)).
		Set("sourceTree", Str("<absolute>"))
	return id
}

// frameworkFileRef returns the content-addressed file reference for a
// plugin-declared framework, emitting it on first use. The reference is
// shared across targets; weak linking never attaches here.
func (syn *synthesis) frameworkFileRef(name string) string {
	if id, ok := syn.frameworkFileRefs[name]; ok {
		return id
	}
	id := domain.ObjectID(domain.SeedFrameworkFile(name))
	syn.frameworkFileRefs[name] = id

	syn.graph.Add(id, name+".framework", "PBXFileReference").
		Set("lastKnownFileType", Str("wrapper.framework")).
		Set("name", Str(name+".framework")).
		Set("path", Str("System/Library/Frameworks/"+name+".framework")).
		Set("sourceTree", Str("SDKROOT"))
	return id
}

// addProjectObjects emits the groups, the project-level configurations, and
// the project object itself.
func (syn *synthesis) addProjectObjects(root *domain.RootConfig, targetRefs []Value, single *singleTargetSDK) {
	targets := nativeTargets(root)

	// Groups.
	sourceChildren := List{
		Ref{idAppDelegateRef, "AppDelegate.swift"},
		Ref{idWebViewCtrlRef, "WebViewController.swift"},
		Ref{idBridgeRef, "Bridge.swift"},
	}
	for _, id := range targets {
		sourceChildren = append(sourceChildren, Ref{staticTargetIDs[id].registrantRef, filepath.Base(RegistrantPath(id))})
	}
	if syn.hasObject(idUpdaterRef) {
		sourceChildren = append(sourceChildren, Ref{idUpdaterRef, "Updater.swift"})
	}
	syn.graph.Add(idSourcesGroup, "Sources", "PBXGroup").
		Set("children", sourceChildren).
		Set("name", Str("Sources")).
		Set("sourceTree", Str("<group>"))

	resourceChildren := List{Ref{idAssetsRef, "Assets.xcassets"}}
	if syn.hasObject(idLaunchScreenRef) {
		resourceChildren = append(resourceChildren, Ref{idLaunchScreenRef, "LaunchScreen.storyboard"})
	}
	for _, id := range targets {
		resourceChildren = append(resourceChildren, Ref{staticTargetIDs[id].infoPlistRef, id + "/Info.plist"})
	}
	syn.graph.Add(idResourcesGroup, "Resources", "PBXGroup").
		Set("children", resourceChildren).
		Set("name", Str("Resources")).
		Set("sourceTree", Str("<group>"))

	frameworkChildren := List{Ref{idWebKitFileRef, "WebKit.framework"}}
	for _, name := range sortedFrameworkNames(syn.frameworkFileRefs) {
		frameworkChildren = append(frameworkChildren, Ref{syn.frameworkFileRefs[name], name + ".framework"})
	}
	syn.graph.Add(idFrameworksGroup, "Frameworks", "PBXGroup").
		Set("children", frameworkChildren).
		Set("name", Str("Frameworks")).
		Set("sourceTree", Str("<group>"))

	pluginChildren := List{}
	for _, path := range sortedFrameworkNames(syn.pluginFileRefs) {
		pluginChildren = append(pluginChildren, Ref{syn.pluginFileRefs[path], filepath.Base(path)})
	}
	syn.graph.Add(idPluginsGroup, "Plugins", "PBXGroup").
		Set("children", pluginChildren).
		Set("name", Str("Plugins")).
		Set("sourceTree", Str("<group>"))

	productChildren := List{}
	for _, id := range targets {
		productChildren = append(productChildren, Ref{staticTargetIDs[id].product, syn.productNames[id]})
	}
	syn.graph.Add(idProductsGroup, "Products", "PBXGroup").
		Set("children", productChildren).
		Set("name", Str("Products")).
		Set("sourceTree", Str("<group>"))

	syn.graph.Add(idMainGroup, "", "PBXGroup").
		Set("children", List{
			Ref{idSourcesGroup, "Sources"},
			Ref{idResourcesGroup, "Resources"},
			Ref{idPluginsGroup, "Plugins"},
			Ref{idFrameworksGroup, "Frameworks"},
			Ref{idProductsGroup, "Products"},
		}).
		Set("sourceTree", Str("<group>"))

	// Project-level configurations.
	syn.graph.Add(idProjectDebug, "Debug", "XCBuildConfiguration").
		Set("buildSettings", projectSettings(false, single)).
		Set("name", Str("Debug"))
	syn.graph.Add(idProjectRelease, "Release", "XCBuildConfiguration").
		Set("buildSettings", projectSettings(true, single)).
		Set("name", Str("Release"))
	syn.graph.Add(idProjectConfigs, "Build configuration list for PBXProject \"App\"", "XCConfigurationList").
		Set("buildConfigurations", List{
			Ref{idProjectDebug, "Debug"},
			Ref{idProjectRelease, "Release"},
		}).
		Set("defaultConfigurationIsVisible", Str("0")).
		Set("defaultConfigurationName", Str("Release"))

	attrs := &Dict{}
	attrs.Set("BuildIndependentTargetsInParallel", Str("1"))
	attrs.Set("LastUpgradeCheck", Str("1500"))

	syn.graph.Add(idProject, "Project object", "PBXProject").
		Set("attributes", attrs).
		Set("buildConfigurationList", Ref{idProjectConfigs, "Build configuration list for PBXProject \"App\""}).
		Set("compatibilityVersion", Str("Xcode 14.0")).
		Set("developmentRegion", Str("en")).
		Set("hasScannedForEncodings", Str("0")).
		Set("knownRegions", List{Str("en"), Str("Base")}).
		Set("mainGroup", Ref{ID: idMainGroup}).
		Set("productRefGroup", Ref{idProductsGroup, "Products"}).
		Set("projectDirPath", Str("")).
		Set("projectRoot", Str("")).
		Set("targets", List(targetRefs))

	syn.graph.SetRoot(Ref{idProject, "Project object"})
}

func (syn *synthesis) hasObject(id string) bool {
	for _, o := range syn.graph.objects {
		if o.ID == id {
			return true
		}
	}
	return false
}

func sortedFrameworkNames(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fileTypeOf maps a file extension to the descriptor's last-known-file-type
// string, defaulting to plain text.
func fileTypeOf(path string) string {
	switch filepath.Ext(path) {
	case ".swift":
		return "sourcecode.swift"
	case ".m":
		return "sourcecode.c.objc"
	case ".mm":
		return "sourcecode.cpp.objcpp"
	case ".h":
		return "sourcecode.c.h"
	case ".c":
		return "sourcecode.c.c"
	case ".storyboard":
		return "file.storyboard"
	case ".xib":
		return "file.xib"
	case ".plist":
		return "text.plist.xml"
	case ".json":
		return "text.json"
	case ".png":
		return "image.png"
	case ".framework":
		return "wrapper.framework"
	case ".xcassets":
		return "folder.assetcatalog"
	default:
		return "text"
	}
}

// targetName is the display name of one platform's native target.
func targetName(platformID string) string {
	switch platformID {
	case domain.PlatformIOS:
		return "App-iOS"
	case domain.PlatformMacOS:
		return "App-macOS"
	default:
		return "App-" + platformID
	}
}
