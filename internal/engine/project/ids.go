package project

import "github.com/hullworks/keel/internal/core/domain"

// Static identifiers for objects the engine itself always emits. Their count
// and identity are stable across every regeneration, so fixed identifiers
// avoid spurious diffs in the generated tree. Objects whose existence
// depends on plugin input get content-addressed identifiers instead (see
// domain.ObjectID and the seed helpers).
const (
	idProject         = "4B4C00000000000000000001"
	idMainGroup       = "4B4C00000000000000000002"
	idProductsGroup   = "4B4C00000000000000000003"
	idSourcesGroup    = "4B4C00000000000000000004"
	idResourcesGroup  = "4B4C00000000000000000005"
	idFrameworksGroup = "4B4C00000000000000000006"
	idPluginsGroup    = "4B4C00000000000000000007"
	idProjectConfigs  = "4B4C00000000000000000008"
	idProjectDebug    = "4B4C00000000000000000009"
	idProjectRelease  = "4B4C00000000000000000010"
	idWebKitFileRef   = "4B4C00000000000000000011"
	idAppDelegateRef  = "4B4C00000000000000000012"
	idWebViewCtrlRef  = "4B4C00000000000000000013"
	idBridgeRef       = "4B4C00000000000000000014"
	idUpdaterRef      = "4B4C00000000000000000015"
	idAssetsRef       = "4B4C00000000000000000016"
	idLaunchScreenRef = "4B4C00000000000000000017"
)

// targetIDs holds the fixed identifier space of one platform's native
// target.
type targetIDs struct {
	target          string
	product         string
	sourcesPhase    string
	frameworksPhase string
	resourcesPhase  string
	scriptPhase     string
	configList      string
	debugConfig     string
	releaseConfig   string
	infoPlistRef    string
	registrantRef   string

	// Build-file associations for the fixed sources/resources of this
	// target.
	appDelegateBuild  string
	webViewCtrlBuild  string
	bridgeBuild       string
	registrantBuild   string
	updaterBuild      string
	assetsBuild       string
	launchScreenBuild string
	webKitBuild       string
}

// staticTargetIDs is the fixed identifier table per built-in platform.
// Custom platforms are generated by their capability providers and never
// appear in this descriptor.
var staticTargetIDs = map[string]targetIDs{
	domain.PlatformIOS: {
		target:            "4B4C100000000000000000A1",
		product:           "4B4C100000000000000000A2",
		sourcesPhase:      "4B4C100000000000000000A3",
		frameworksPhase:   "4B4C100000000000000000A4",
		resourcesPhase:    "4B4C100000000000000000A5",
		scriptPhase:       "4B4C100000000000000000A6",
		configList:        "4B4C100000000000000000A7",
		debugConfig:       "4B4C100000000000000000A8",
		releaseConfig:     "4B4C100000000000000000A9",
		infoPlistRef:      "4B4C100000000000000000B1",
		registrantRef:     "4B4C100000000000000000B2",
		appDelegateBuild:  "4B4C100000000000000000C1",
		webViewCtrlBuild:  "4B4C100000000000000000C2",
		bridgeBuild:       "4B4C100000000000000000C3",
		registrantBuild:   "4B4C100000000000000000C4",
		updaterBuild:      "4B4C100000000000000000C5",
		assetsBuild:       "4B4C100000000000000000C6",
		launchScreenBuild: "4B4C100000000000000000C7",
		webKitBuild:       "4B4C100000000000000000C8",
	},
	domain.PlatformMacOS: {
		target:            "4B4C200000000000000000A1",
		product:           "4B4C200000000000000000A2",
		sourcesPhase:      "4B4C200000000000000000A3",
		frameworksPhase:   "4B4C200000000000000000A4",
		resourcesPhase:    "4B4C200000000000000000A5",
		scriptPhase:       "4B4C200000000000000000A6",
		configList:        "4B4C200000000000000000A7",
		debugConfig:       "4B4C200000000000000000A8",
		releaseConfig:     "4B4C200000000000000000A9",
		infoPlistRef:      "4B4C200000000000000000B1",
		registrantRef:     "4B4C200000000000000000B2",
		appDelegateBuild:  "4B4C200000000000000000C1",
		webViewCtrlBuild:  "4B4C200000000000000000C2",
		bridgeBuild:       "4B4C200000000000000000C3",
		registrantBuild:   "4B4C200000000000000000C4",
		updaterBuild:      "4B4C200000000000000000C5",
		assetsBuild:       "4B4C200000000000000000C6",
		launchScreenBuild: "4B4C200000000000000000C7",
		webKitBuild:       "4B4C200000000000000000C8",
	},
}
